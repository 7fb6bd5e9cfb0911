package controllers

import (
	"net/http"
	"strconv"

	"github.com/faspark/faspark-backend/internal/auth/services"
	"github.com/faspark/faspark-backend/pkg/utils"
	"github.com/labstack/echo/v4"
)

type UserAuthController struct {
	Service *services.UserService
}

func NewUserAuthController(service *services.UserService) *UserAuthController {
	return &UserAuthController{Service: service}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register menangani pendaftaran user baru.
func (uc *UserAuthController) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request payload",
		})
	}

	if err := uc.Service.Register(req.Username, req.Password, req.Role); err != nil {
		if err == services.ErrUsernameTaken {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"message": "Username sudah digunakan",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal mendaftarkan user: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Registrasi sukses",
	})
}

// Login mengautentikasi user dan menerbitkan token dengan subject = id user.
func (uc *UserAuthController) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request payload",
		})
	}

	user, err := uc.Service.Authenticate(req.Username, req.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"message": "Username atau password salah",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal memproses login: " + err.Error(),
		})
	}

	token, err := utils.GenerateJWTToken(user.ID, user.Username, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Failed to generate token",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Login sukses",
		"token":    token,
		"role":     user.Role,
		"username": user.Username,
		"user": map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// UpdateProfile menimpa username dan, bila diisi, password user.
func (uc *UserAuthController) UpdateProfile(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "id must be a valid number",
		})
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request payload",
		})
	}

	if err := uc.Service.UpdateProfile(id, req.Username, req.Password); err != nil {
		if err == services.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"message": "User tidak ditemukan",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal memperbarui profil: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Profil berhasil diupdate",
	})
}
