package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/faspark/faspark-backend/internal/laporan/models"
	"github.com/faspark/faspark-backend/internal/laporan/services"
	"github.com/faspark/faspark-backend/pkg/utils"
	"github.com/labstack/echo/v4"
)

// RecordController menangani laporan kehilangan barang. Pembuatan laporan
// terbuka untuk umum; operasi lain khusus petugas (diatur di routes).
type RecordController struct {
	Service   *services.RecordService
	UploadDir string
}

func NewRecordController(service *services.RecordService, uploadDir string) *RecordController {
	return &RecordController{Service: service, UploadDir: uploadDir}
}

// RecordResponse mengikuti bentuk payload backend lama.
type RecordResponse struct {
	ID           int       `json:"id"`
	NamaPelapor  string    `json:"namaPelapor"`
	NoHpPelapor  string    `json:"noHpPelapor"`
	JenisBarang  string    `json:"jenisBarang"`
	Area         string    `json:"area"`
	Deskripsi    string    `json:"deskripsi"`
	FotoURL      string    `json:"fotoUrl"`
	TanggalLapor time.Time `json:"tanggalLapor"`
}

func recordResponse(c echo.Context, r *models.Record) RecordResponse {
	return RecordResponse{
		ID:           r.ID,
		NamaPelapor:  r.NamaPelapor,
		NoHpPelapor:  r.NoHP,
		JenisBarang:  r.JenisBarang,
		Area:         r.AreaKehilangan,
		Deskripsi:    r.Description,
		FotoURL:      utils.BuildFileURL(c, r.ImageURL),
		TanggalLapor: r.TanggalLapor,
	}
}

func (rc *RecordController) bindForm(c echo.Context) (*models.Record, string) {
	r := &models.Record{
		NamaPelapor:    c.FormValue("nama_pelapor"),
		NoHP:           c.FormValue("no_hp"),
		JenisBarang:    c.FormValue("jenis_barang"),
		AreaKehilangan: c.FormValue("area_kehilangan"),
		Description:    c.FormValue("description"),
	}
	switch {
	case r.NamaPelapor == "":
		return nil, "nama_pelapor wajib diisi."
	case r.NoHP == "":
		return nil, "no_hp wajib diisi."
	case r.JenisBarang == "":
		return nil, "jenis_barang wajib diisi."
	case r.AreaKehilangan == "":
		return nil, "area_kehilangan wajib diisi."
	}
	return r, ""
}

// CreateRecord menerima multipart form; foto wajib dan tidak boleh kosong.
// Resource ini tidak memberlakukan allow-list ekstensi (perilaku lama).
func (rc *RecordController) CreateRecord(c echo.Context) error {
	record, msg := rc.bindForm(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": msg})
	}

	file, err := c.FormFile("foto")
	if err != nil || file.Size == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Gambar wajib diunggah.",
		})
	}

	fileName, err := utils.SaveUploadedImage(file, rc.UploadDir, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Terjadi kesalahan saat menyimpan laporan.",
			"error":   err.Error(),
		})
	}
	record.ImageURL = fileName

	id, err := rc.Service.Create(record)
	if err != nil {
		utils.DeleteUploadedImage(rc.UploadDir, fileName)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Terjadi kesalahan saat menyimpan laporan.",
			"error":   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Laporan berhasil dikirim.",
		"id":      id,
		"fotoUrl": utils.BuildFileURL(c, fileName),
	})
}

func (rc *RecordController) GetAllRecords(c echo.Context) error {
	records, err := rc.Service.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal mengambil laporan: " + err.Error(),
		})
	}

	out := make([]RecordResponse, 0, len(records))
	for i := range records {
		out = append(out, recordResponse(c, &records[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (rc *RecordController) GetRecordByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "id must be a valid number",
		})
	}

	record, err := rc.Service.GetByID(id)
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

	return c.JSON(http.StatusOK, recordResponse(c, record))
}

// UpdateRecord menimpa seluruh field editable. Foto opsional; bila dikirim
// tapi kosong itu error validasi, bukan "tidak diganti". File lama dihapus
// best-effort setelah file baru tersimpan.
func (rc *RecordController) UpdateRecord(c echo.Context) error {
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

	record, msg := rc.bindForm(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"message": msg})
	}
	record.ID = id
	record.ImageURL = existing.ImageURL

	if file, ferr := c.FormFile("foto"); ferr == nil {
		if file.Size == 0 {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"message": "Gambar tidak boleh kosong jika diunggah.",
			})
		}
		fileName, err := utils.SaveUploadedImage(file, rc.UploadDir, nil)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"message": "Terjadi kesalahan saat memperbarui laporan.",
				"error":   err.Error(),
			})
		}
		utils.DeleteUploadedImage(rc.UploadDir, existing.ImageURL)
		record.ImageURL = fileName
	}

	if err := rc.Service.Update(record); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Terjadi kesalahan saat memperbarui laporan.",
			"error":   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Laporan berhasil diperbarui.",
	})
}

func (rc *RecordController) DeleteRecord(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "id must be a valid number",
		})
	}

	record, err := rc.Service.GetByID(id)
	if err != nil {
		if err == services.ErrLaporanNotFound {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"message": "Data tidak ditemukan.",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal mengambil laporan: " + err.Error(),
		})
	}

	utils.DeleteUploadedImage(rc.UploadDir, record.ImageURL)

	if err := rc.Service.Delete(id); err != nil && err != services.ErrLaporanNotFound {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Terjadi kesalahan saat menghapus laporan.",
			"error":   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Data berhasil dihapus.",
	})
}
