package routes

import (
	"github.com/faspark/faspark-backend/internal/common/middlewares"
	"github.com/faspark/faspark-backend/internal/laporan/controllers"
	"github.com/labstack/echo/v4"
)

func RegisterLaporanRoutes(e *echo.Echo, rec *controllers.RecordController, rep *controllers.ReportController) {
	petugas := middlewares.RequireRoles("petugas")

	// Laporan kehilangan: pembuatan terbuka (pelapor tidak harus punya akun),
	// sisanya khusus petugas.
	e.POST("/api/record", rec.CreateRecord)

	record := e.Group("/api/record", middlewares.JWTMiddleware(), petugas)
	record.GET("", rec.GetAllRecords)
	record.GET("/:id", rec.GetRecordByID)
	record.PUT("/:id", rec.UpdateRecord)
	record.DELETE("/:id", rec.DeleteRecord)

	// Laporan motor ditemukan: seluruhnya khusus petugas.
	report := e.Group("/api/report", middlewares.JWTMiddleware(), petugas)
	report.POST("", rep.CreateReport)
	report.GET("", rep.GetReports)
	report.PUT("/:id", rep.UpdateReport)
	report.DELETE("/:id", rep.DeleteReport)

	// Akses baca publik untuk satu laporan motor.
	e.GET("/api/parkingreport/:id", rep.GetReportByID)
}
