package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tgxchange/exchange-api/internal/api/metrics"
	"github.com/tgxchange/exchange-api/internal/core/domain"
	"github.com/tgxchange/exchange-api/internal/core/service"
)

// QuoteHandler serves live conversion quotes.
type QuoteHandler struct {
	quotes *service.QuoteService
}

func NewQuoteHandler(quotes *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// Get handles GET /api/quote?asset=BTC&amount=0.01.
//
// @Summary      Quote an asset amount in RUB
// @Tags         quote
// @Produce      json
// @Param        asset   query     string  true  "Asset code (e.g. BTC)"
// @Param        amount  query     number  true  "Asset amount"
// @Success      200     {object}  quoteResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Router       /api/quote [get]
func (h *QuoteHandler) Get(c echo.Context) error {
	if _, err := ctxClaims(c); err != nil {
		return err
	}

	asset := domain.Asset(c.QueryParam("asset"))
	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil {
		return domain.ErrInvalidAmount
	}

	rubAmount, rate, err := h.quotes.Quote(asset, amount)
	if err != nil {
		return err
	}

	metrics.QuotesTotal.WithLabelValues(string(asset)).Inc()
	return c.JSON(http.StatusOK, quoteResponse{RubAmount: rubAmount, Rate: rate})
}
