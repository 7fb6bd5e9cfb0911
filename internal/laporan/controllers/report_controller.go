package controllers

import (
	"net/http"
	"strconv"

	"github.com/faspark/faspark-backend/internal/laporan/models"
	"github.com/faspark/faspark-backend/internal/laporan/services"
	"github.com/faspark/faspark-backend/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Ekstensi gambar yang diterima resource report.
var allowedImageExt = []string{".jpg", ".jpeg", ".png"}

// ReportController menangani laporan motor ditemukan. Seluruh operasi
// tulis khusus petugas; gambar opsional tapi divalidasi bila dikirim.
type ReportController struct {
	Service   *services.ReportService
	UploadDir string
}

func NewReportController(service *services.ReportService, uploadDir string) *ReportController {
	return &ReportController{Service: service, UploadDir: uploadDir}
}

func (rc *ReportController) bindForm(c echo.Context) (*models.Report, string) {
	r := &models.Report{
		PlatMotor: c.FormValue("plat_motor"),
		NamaMotor: c.FormValue("nama_motor"),
		Spot:      c.FormValue("spot"),
		Deskripsi: c.FormValue("deskripsi"),
	}
	switch {
	case r.PlatMotor == "":
		return nil, "plat_motor wajib diisi."
	case r.NamaMotor == "":
		return nil, "nama_motor wajib diisi."
	case r.Spot == "":
		return nil, "spot wajib diisi."
	}
	return r, ""
}

// saveGambar memproses field gambar opsional. Mengembalikan nama file baru
// ("" bila tidak ada gambar) atau pesan error validasi.
func (rc *ReportController) saveGambar(c echo.Context) (string, string, error) {
	file, err := c.FormFile("gambar")
	if err != nil {
		return "", "", nil
	}
	if file.Size == 0 {
		return "", "Gambar tidak boleh kosong.", nil
	}

	fileName, err := utils.SaveUploadedImage(file, rc.UploadDir, allowedImageExt)
	if err == utils.ErrFileTypeNotAllowed {
		return "", "Format file tidak didukung. Gunakan .jpg, .jpeg, atau .png.", nil
	}
	if err != nil {
		return "", "", err
	}
	return fileName, "", nil
}

func (rc *ReportController) CreateReport(c echo.Context) error {
	report, msg := rc.bindForm(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": msg})
	}

	fileName, msg, err := rc.saveGambar(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": msg})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Terjadi kesalahan saat mengirim laporan.",
			"error":   err.Error(),
		})
	}
	report.GambarPath = fileName

	id, err := rc.Service.Create(report)
	if err != nil {
		utils.DeleteUploadedImage(rc.UploadDir, fileName)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Terjadi kesalahan saat mengirim laporan.",
			"error":   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Laporan berhasil dikirim.",
		"id":      id,
	})
}

func (rc *ReportController) GetReports(c echo.Context) error {
	reports, err := rc.Service.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal mengambil laporan: " + err.Error(),
		})
	}
	if reports == nil {
		reports = []models.Report{}
	}
	return c.JSON(http.StatusOK, reports)
}

// GetReportByID melayani GET /api/parkingreport/:id (publik).
func (rc *ReportController) GetReportByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "id must be a valid number",
		})
	}

	report, err := rc.Service.GetByID(id)
	if err != nil {
		if err == services.ErrLaporanNotFound {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"message": "Record not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal mengambil laporan: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, report)
}

func (rc *ReportController) UpdateReport(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "id must be a valid number",
		})
	}

	existing, err := rc.Service.GetByID(id)
	if err != nil {
		if err == services.ErrLaporanNotFound {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"message": "Laporan tidak ditemukan.",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal mengambil laporan: " + err.Error(),
		})
	}

	report, msg := rc.bindForm(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": msg})
	}
	report.ID = id
	report.GambarPath = existing.GambarPath

	fileName, msg, err := rc.saveGambar(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": msg})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Terjadi kesalahan saat memperbarui laporan.",
			"error":   err.Error(),
		})
	}
	if fileName != "" {
		utils.DeleteUploadedImage(rc.UploadDir, existing.GambarPath)
		report.GambarPath = fileName
	}

	if err := rc.Service.Update(report); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Terjadi kesalahan saat memperbarui laporan.",
			"error":   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Laporan berhasil diperbarui.",
	})
}

func (rc *ReportController) DeleteReport(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "id must be a valid number",
		})
	}

	report, err := rc.Service.GetByID(id)
	if err != nil {
		if err == services.ErrLaporanNotFound {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"message": "Laporan tidak ditemukan.",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal mengambil laporan: " + err.Error(),
		})
	}

	utils.DeleteUploadedImage(rc.UploadDir, report.GambarPath)

	if err := rc.Service.Delete(id); err != nil && err != services.ErrLaporanNotFound {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Terjadi kesalahan saat menghapus laporan.",
			"error":   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Laporan berhasil dihapus.",
	})
}
