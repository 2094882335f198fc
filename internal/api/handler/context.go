package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// authClaims is the identity the Auth middleware stashed in context.
type authClaims struct {
	UserID   int64
	Role     string
	Username string
}

// ctxClaims extracts the claims and fast-fails before any service call:
// a zero user id or empty role means the middleware did not run.
func ctxClaims(c echo.Context) (authClaims, error) {
	id, _ := c.Get("user_id").(int64)
	role, _ := c.Get("role").(string)
	if id == 0 || role == "" {
		return authClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	username, _ := c.Get("username").(string)
	return authClaims{UserID: id, Role: role, Username: username}, nil
}
