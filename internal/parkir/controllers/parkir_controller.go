package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/faspark/faspark-backend/internal/parkir/models"
	"github.com/faspark/faspark-backend/internal/parkir/services"
	"github.com/labstack/echo/v4"
)

type ParkirController struct {
	Service *services.ParkirService
}

func NewParkirController(service *services.ParkirService) *ParkirController {
	return &ParkirController{Service: service}
}

type ParkirInput struct {
	IDUser int `json:"id_user"`
	IDArea int `json:"id_area"`
}

// ParkirMasuk menangani check-in.
func (pc *ParkirController) ParkirMasuk(c echo.Context) error {
	var input ParkirInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request payload",
		})
	}

	log.Printf("Request parkir masuk: id_user=%d, id_area=%d", input.IDUser, input.IDArea)

	id, err := pc.Service.CheckIn(input.IDUser, input.IDArea)
	if err != nil {
		if err == services.ErrAlreadyParked {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"message": "Kamu sudah parkir di area lain.",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal menyimpan riwayat parkir: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Berhasil parkir",
		"id":      id,
	})
}

// KeluarParkir menangani check-out berdasarkan id riwayat.
func (pc *ParkirController) KeluarParkir(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "id must be a valid number",
		})
	}

	if err := pc.Service.CheckOut(id); err != nil {
		if err == services.ErrRiwayatNotFound {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"message": "Data tidak ditemukan atau sudah keluar",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal menutup riwayat parkir: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Berhasil keluar parkir",
	})
}

// GetParkirAktif mengembalikan seluruh sesi aktif (join user dan area).
func (pc *ParkirController) GetParkirAktif(c echo.Context) error {
	list, err := pc.Service.GetParkirAktif()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal mengambil data parkir aktif: " + err.Error(),
		})
	}
	if list == nil {
		list = []models.ParkirAktif{}
	}
	return c.JSON(http.StatusOK, list)
}

// GetParkirAktifByUser mengembalikan sesi aktif milik satu user.
// Tidak ada sesi adalah kondisi normal, dijawab {isParked:false}.
func (pc *ParkirController) GetParkirAktifByUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "id must be a valid number",
		})
	}

	sesi, err := pc.Service.GetSesiAktifByUser(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal mengambil sesi aktif: " + err.Error(),
		})
	}
	if sesi == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"isParked": false,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"isParked":    true,
		"id_riwayat":  sesi.IDRiwayat,
		"id_area":     sesi.IDArea,
		"nama_area":   sesi.NamaArea,
		"waktu_masuk": sesi.WaktuMasuk,
	})
}

// GetUserParkirStatus adalah ringkasan status parkir satu user.
func (pc *ParkirController) GetUserParkirStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "userId must be a valid number",
		})
	}

	sesi, err := pc.Service.GetSesiAktifByUser(id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal mengambil status parkir: " + err.Error(),
		})
	}
	if sesi == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"active": false,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"active":    true,
		"areaId":    sesi.IDArea,
		"riwayatId": sesi.IDRiwayat,
	})
}

// GetAreaStatus mengembalikan okupansi seluruh area. Endpoint publik.
func (pc *ParkirController) GetAreaStatus(c echo.Context) error {
	list, err := pc.Service.GetAreaStatus()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal mengambil status area: " + err.Error(),
		})
	}
	if list == nil {
		list = []models.AreaStatus{}
	}
	return c.JSON(http.StatusOK, list)
}
