package controllers

import (
	"net/http"

	"github.com/faspark/faspark-backend/internal/auth/services"
	"github.com/faspark/faspark-backend/pkg/utils"
	"github.com/labstack/echo/v4"
)

// AuthController melayani jalur login lama. Token yang diterbitkan di sini
// tidak membawa subject (id user), hanya username dan role.
type AuthController struct {
	Service *services.UserService
}

func NewAuthController(service *services.UserService) *AuthController {
	return &AuthController{Service: service}
}

func (ac *AuthController) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid request payload",
		})
	}

	user, err := ac.Service.Authenticate(req.Username, req.Password)
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

	token, err := utils.GenerateLegacyJWTToken(user.Username, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Failed to generate token",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Login sukses",
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	})
}
