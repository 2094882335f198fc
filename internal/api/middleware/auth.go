package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tgxchange/exchange-api/internal/api/metrics"
	"github.com/tgxchange/exchange-api/internal/core/service"
)

// HeaderInitData carries the raw Telegram launch-data credential.
const HeaderInitData = "X-Init-Data"

// IdentityResolver authenticates a raw launch-data string.
type IdentityResolver interface {
	Resolve(ctx context.Context, initData string) (service.Identity, error)
}

// Auth verifies the launch data on every request and injects the resolved
// identity into context. Nothing downstream runs without it.
func Auth(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			initData := c.Request().Header.Get(HeaderInitData)
			if initData == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "initData missing")
			}

			ident, err := resolver.Resolve(c.Request().Context(), initData)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "initData invalid")
			}

			c.Set("user_id", ident.ID)
			c.Set("role", ident.Role)
			c.Set("username", ident.Username)

			return next(c)
		}
	}
}
