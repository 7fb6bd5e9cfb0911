package routes

import (
	"github.com/faspark/faspark-backend/internal/auth/controllers"
	"github.com/faspark/faspark-backend/internal/common/middlewares"
	"github.com/labstack/echo/v4"
)

func RegisterAuthRoutes(e *echo.Echo, ac *controllers.AuthController, uac *controllers.UserAuthController, uc *controllers.UserController) {
	e.POST("/api/auth/login", ac.Login)

	e.POST("/api/userauth/register", uac.Register)
	e.POST("/api/userauth/login", uac.Login)
	// Endpoint ini tidak dilindungi auth di backend lama; dipertahankan.
	e.PUT("/api/userauth/update-profile/:id", uac.UpdateProfile)

	e.GET("/api/users", uc.GetUsers, middlewares.JWTMiddleware())
}
