package middlewares

import (
	"net/http"
	"strings"

	"github.com/faspark/faspark-backend/pkg/utils"
	"github.com/labstack/echo/v4"
)

// RequireRoles memeriksa apakah role pada klaim JWT termasuk dalam
// allow-list endpoint. Perbandingan tidak peka huruf besar-kecil karena
// role di token sudah di-lowercase saat login.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawClaims := c.Get(string(ContextKeyClaims))
			claims, ok := rawClaims.(*utils.Claims)
			if !ok || claims == nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Missing or invalid JWT claims",
					"data":    nil,
				})
			}

			for _, role := range roles {
				if strings.EqualFold(claims.Role, role) {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"status":  http.StatusForbidden,
				"message": "Anda tidak memiliki hak akses",
				"data":    nil,
			})
		}
	}
}
