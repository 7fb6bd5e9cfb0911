package controllers

import (
	"net/http"

	"github.com/faspark/faspark-backend/internal/auth/models"
	"github.com/faspark/faspark-backend/internal/auth/services"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	Service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{Service: service}
}

// GetUsers mengembalikan seluruh user. Hash password tidak ikut diserialisasi.
func (uc *UserController) GetUsers(c echo.Context) error {
	users, err := uc.Service.GetUsers()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Gagal mengambil data user: " + err.Error(),
		})
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(http.StatusOK, users)
}
