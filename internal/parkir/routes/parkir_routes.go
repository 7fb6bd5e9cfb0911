package routes

import (
	"github.com/faspark/faspark-backend/internal/common/middlewares"
	"github.com/faspark/faspark-backend/internal/parkir/controllers"
	"github.com/labstack/echo/v4"
)

func RegisterParkirRoutes(e *echo.Echo, pc *controllers.ParkirController) {
	// Okupansi area terbuka tanpa auth (dipakai layar publik).
	e.GET("/api/parkir/area-status", pc.GetAreaStatus)

	civitas := middlewares.RequireRoles("petugas", "mahasiswa", "dosen")

	g := e.Group("/api/parkir", middlewares.JWTMiddleware())
	g.GET("/aktif", pc.GetParkirAktif, civitas)
	g.GET("/aktif-by-user/:id", pc.GetParkirAktifByUser)
	g.GET("/status/:userId", pc.GetUserParkirStatus)
	g.POST("", pc.ParkirMasuk, civitas)
	g.PUT("/:id", pc.KeluarParkir, civitas)
}
