package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tgxchange/exchange-api/internal/core/domain"
	"github.com/tgxchange/exchange-api/internal/core/ports"
)

const (
	defaultListMineLimit = 100
	defaultListAllLimit  = 200
	notifyTimeout        = 10 * time.Second
)

// CreateGuard abstracts the idempotency store (Redis). A non-empty
// Idempotency-Key maps to the order id created for it.
type CreateGuard interface {
	Lookup(ctx context.Context, key string) (string, error)
	Remember(ctx context.Context, key, orderID string) error
}

// OrderService owns the order lifecycle: creation, role-gated mutation, and
// query paths. It is the system of record; the notifier only observes it.
type OrderService struct {
	orders    ports.OrderRepository
	quotes    *QuoteService
	notifier  ports.OrderNotifier
	guard     CreateGuard // optional
	addresses map[domain.Asset]string
	log       zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	quotes *QuoteService,
	notifier ports.OrderNotifier,
	guard CreateGuard,
	addresses map[domain.Asset]string,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		quotes:    quotes,
		notifier:  notifier,
		guard:     guard,
		addresses: addresses,
		log:       log,
	}
}

// Create validates the request, freezes a quote onto a new pending order,
// persists it, and fires a best-effort notification. When an idempotency key
// is provided and already seen, the originally created order is returned.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	rubAmount, rate, err := s.quotes.Quote(in.Asset, in.Amount)
	if err != nil {
		return nil, err
	}

	// Receive method is optional; when present it must name a known channel.
	method := domain.ReceiveMethod(strings.ToUpper(strings.TrimSpace(string(in.ReceiveMethod))))
	if method != "" && !domain.IsValidReceiveMethod(method) {
		return nil, domain.ErrInvalidReceiveMethod
	}

	address, ok := s.addresses[in.Asset]
	if !ok {
		return nil, domain.ErrNoDepositAddress
	}

	if in.IdempotencyKey != "" && s.guard != nil {
		existingID, err := s.guard.Lookup(ctx, in.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Msg("idempotency lookup failed, creating anyway")
		} else if existingID != "" {
			existing, err := s.orders.FindByID(ctx, existingID)
			if err == nil {
				s.log.Info().Str("order_id", existingID).Str("idempotency_key", in.IdempotencyKey).Msg("idempotent replay")
				return existing, nil
			}
		}
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:            generateOrderID(),
		UserID:        in.UserID,
		Asset:         in.Asset,
		Amount:        in.Amount,
		RubAmount:     rubAmount,
		Rate:          rate,
		Status:        domain.StatusPending,
		Address:       address,
		Txid:          in.Txid,
		ReceiveMethod: method,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	if in.IdempotencyKey != "" && s.guard != nil {
		if err := s.guard.Remember(ctx, in.IdempotencyKey, order.ID); err != nil {
			s.log.Warn().Err(err).Str("order_id", order.ID).Msg("failed to record idempotency key")
		}
	}

	s.log.Info().
		Str("order_id", order.ID).
		Int64("user_id", in.UserID).
		Str("asset", string(in.Asset)).
		Float64("rub_amount", rubAmount).
		Msg("order created")

	s.dispatchNotification(ports.OrderNotification{
		OrderID:       order.ID,
		UserID:        in.UserID,
		Username:      in.Username,
		Asset:         in.Asset,
		Amount:        in.Amount,
		RubAmount:     rubAmount,
		ReceiveMethod: method,
		Address:       address,
	})

	return order, nil
}

// dispatchNotification fires the alert in a detached goroutine: the creation
// response never waits for it, and once started the attempt runs to
// completion or failure with no cancellation hook. At most one attempt.
func (s *OrderService) dispatchNotification(n ports.OrderNotification) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.OrderCreated(ctx, n); err != nil {
			s.log.Warn().Err(err).Str("order_id", n.OrderID).Msg("order notification failed")
		}
	}()
}

// SetTxid lets the owning client attach or clear a transaction reference.
// Foreign and unknown orders are indistinguishable: both report not found.
func (s *OrderService) SetTxid(ctx context.Context, in ports.SetTxidInput) error {
	if err := s.orders.UpdateTxid(ctx, in.OrderID, in.RequesterID, in.Txid); err != nil {
		return err
	}
	s.log.Info().Str("order_id", in.OrderID).Int64("user_id", in.RequesterID).Msg("txid updated")
	return nil
}

// SetStatus applies an operator status change with an optional comment.
func (s *OrderService) SetStatus(ctx context.Context, in ports.SetStatusInput) error {
	if in.RequesterRole != domain.RoleOperator {
		return domain.ErrForbidden
	}
	if !domain.AssignableStatus(in.Status) {
		return domain.ErrInvalidStatus
	}

	order, err := s.orders.FindByID(ctx, in.OrderID)
	if err != nil {
		return err
	}
	if !domain.CanTransition(order.Status, in.Status) {
		return fmt.Errorf("%w: %s to %s", domain.ErrInvalidStatus, order.Status, in.Status)
	}

	if err := s.orders.UpdateStatus(ctx, in.OrderID, in.Status, in.Comment); err != nil {
		return err
	}

	s.log.Info().
		Str("order_id", in.OrderID).
		Str("from", string(order.Status)).
		Str("to", string(in.Status)).
		Msg("order status updated")
	return nil
}

// ListMine returns the caller's own orders, newest first.
func (s *OrderService) ListMine(ctx context.Context, userID int64, limit int64) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = defaultListMineLimit
	}
	return s.orders.List(ctx, ports.ListOrdersFilter{UserID: userID, Limit: limit})
}

// ListAll returns orders across all users, operator only, optionally filtered
// by exact status.
func (s *OrderService) ListAll(ctx context.Context, in ports.ListAllInput) ([]*domain.Order, error) {
	if in.RequesterRole != domain.RoleOperator {
		return nil, domain.ErrForbidden
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultListAllLimit
	}
	return s.orders.List(ctx, ports.ListOrdersFilter{Status: in.Status, Limit: limit})
}

// Get returns a single order by id.
func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// generateOrderID returns a fresh opaque order id in the format ord_XXXXXXXX.
func generateOrderID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("ord_%08x", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("ord_%08x", b)
}
