package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tgxchange/exchange-api/internal/api/metrics"
	"github.com/tgxchange/exchange-api/internal/core/domain"
	"github.com/tgxchange/exchange-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order lifecycle operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /api/orders.
//
// @Summary      Create a new exchange order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Key to prevent duplicate submissions"
// @Param        body             body      createOrderRequest  true   "Order details"
// @Success      201              {object}  createOrderResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:         claims.UserID,
		Username:       claims.Username,
		Asset:          domain.Asset(req.Asset),
		Amount:         req.Amount,
		Txid:           req.Txid,
		ReceiveMethod:  domain.ReceiveMethod(req.ReceiveMethod),
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(string(order.Asset)).Inc()
	return c.JSON(http.StatusCreated, toCreateResponse(order))
}

// ListMine handles GET /api/my-orders.
//
// @Summary      List the caller's own orders, newest first
// @Tags         orders
// @Produce      json
// @Success      200  {array}   orderResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/my-orders [get]
func (h *OrderHandler) ListMine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListMine(c.Request().Context(), claims.UserID, 0)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderListResponse(orders))
}

// ListAll handles GET /api/orders?status=pending (operator only).
//
// @Summary      List all orders, optionally filtered by status
// @Tags         orders
// @Produce      json
// @Param        status  query     string  false  "Exact status filter"
// @Success      200     {array}   orderResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListAll(c.Request().Context(), ports.ListAllInput{
		RequesterRole: claims.Role,
		Status:        domain.OrderStatus(c.QueryParam("status")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderListResponse(orders))
}

// SetStatus handles POST /api/orders/:id/status (operator only).
//
// @Summary      Transition an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Order id"
// @Param        body  body      setStatusRequest  true  "Target status and optional comment"
// @Success      200   {object}  ackResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/orders/{id}/status [post]
func (h *OrderHandler) SetStatus(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.service.SetStatus(c.Request().Context(), ports.SetStatusInput{
		OrderID:       c.Param("id"),
		RequesterRole: claims.Role,
		Status:        domain.OrderStatus(req.Status),
		Comment:       req.Comment,
	})
	if err != nil {
		return err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, ackResponse{OK: true})
}

// SetTxid handles POST /api/orders/:id/txid (owner only).
//
// @Summary      Attach or clear the deposit transaction reference
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Order id"
// @Param        body  body      setTxidRequest  true  "Transaction reference (empty clears)"
// @Success      200   {object}  ackResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/orders/{id}/txid [post]
func (h *OrderHandler) SetTxid(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req setTxidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.service.SetTxid(c.Request().Context(), ports.SetTxidInput{
		OrderID:     c.Param("id"),
		RequesterID: claims.UserID,
		Txid:        req.Txid,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ackResponse{OK: true})
}
