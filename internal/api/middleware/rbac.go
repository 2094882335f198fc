package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tgxchange/exchange-api/internal/core/domain"
)

// RequireOperator gates operator-only routes. Auth must run first; any other
// role gets a bare "forbidden" with no further detail.
func RequireOperator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != domain.RoleOperator {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
