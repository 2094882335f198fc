package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tgxchange/exchange-api/internal/core/domain"
)

// MeHandler returns the authenticated identity and the configured deposit
// addresses the Mini-App needs to render the exchange form.
type MeHandler struct {
	addresses map[domain.Asset]string
}

func NewMeHandler(addresses map[domain.Asset]string) *MeHandler {
	return &MeHandler{addresses: addresses}
}

// Get handles GET /api/me.
//
// @Summary      Current identity, role and deposit addresses
// @Tags         me
// @Produce      json
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/me [get]
func (h *MeHandler) Get(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	addrs := make(map[string]string, len(h.addresses))
	for asset, addr := range h.addresses {
		addrs[string(asset)] = addr
	}

	return c.JSON(http.StatusOK, meResponse{
		ID:        claims.UserID,
		Role:      claims.Role,
		Addresses: addrs,
	})
}
