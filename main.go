package main

import (
	"log"

	"github.com/faspark/faspark-backend/config"
	authControllers "github.com/faspark/faspark-backend/internal/auth/controllers"
	authRoutes "github.com/faspark/faspark-backend/internal/auth/routes"
	authServices "github.com/faspark/faspark-backend/internal/auth/services"
	laporanControllers "github.com/faspark/faspark-backend/internal/laporan/controllers"
	laporanRoutes "github.com/faspark/faspark-backend/internal/laporan/routes"
	laporanServices "github.com/faspark/faspark-backend/internal/laporan/services"
	parkirControllers "github.com/faspark/faspark-backend/internal/parkir/controllers"
	parkirRoutes "github.com/faspark/faspark-backend/internal/parkir/routes"
	parkirServices "github.com/faspark/faspark-backend/internal/parkir/services"
	"github.com/faspark/faspark-backend/pkg/storage/mariadb"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.LoadConfig()
	db := mariadb.Connect()

	// Inisialisasi service
	userService := authServices.NewUserService(db)
	parkirService := parkirServices.NewParkirService(db)
	recordService := laporanServices.NewRecordService(db)
	reportService := laporanServices.NewReportService(db)

	// Inisialisasi controller
	authController := authControllers.NewAuthController(userService)
	userAuthController := authControllers.NewUserAuthController(userService)
	userController := authControllers.NewUserController(userService)
	parkirController := parkirControllers.NewParkirController(parkirService)
	recordController := laporanControllers.NewRecordController(recordService, cfg.UploadDir)
	reportController := laporanControllers.NewReportController(reportService, cfg.UploadDir)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// File gambar dilayani statis supaya URL yang dikembalikan resolve.
	e.Static("/uploads", cfg.UploadDir)

	authRoutes.RegisterAuthRoutes(e, authController, userAuthController, userController)
	parkirRoutes.RegisterParkirRoutes(e, parkirController)
	laporanRoutes.RegisterLaporanRoutes(e, recordController, reportController)

	log.Printf("Server berjalan pada port %s...", cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
