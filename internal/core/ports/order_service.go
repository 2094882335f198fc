package ports

import (
	"context"

	"github.com/tgxchange/exchange-api/internal/core/domain"
)

// CreateOrderInput carries all data needed to create a new order.
// UserID and Username come from the authenticated identity, never the body.
type CreateOrderInput struct {
	UserID        int64
	Username      string
	Asset         domain.Asset
	Amount        float64
	Txid          string
	ReceiveMethod domain.ReceiveMethod
	// IdempotencyKey, when non-empty, makes retried submissions return the
	// originally created order instead of a duplicate.
	IdempotencyKey string
}

// SetStatusInput carries an operator status change.
type SetStatusInput struct {
	OrderID       string
	RequesterRole string
	Status        domain.OrderStatus
	Comment       string
}

// SetTxidInput carries an owner txid change. Empty Txid clears the field.
type SetTxidInput struct {
	OrderID     string
	RequesterID int64
	Txid        string
}

// ListAllInput carries the operator-facing list query.
type ListAllInput struct {
	RequesterRole string
	Status        domain.OrderStatus
	Limit         int64
}

// OrderService defines the use-case operations over the order lifecycle.
type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	SetTxid(ctx context.Context, input SetTxidInput) error
	SetStatus(ctx context.Context, input SetStatusInput) error
	ListMine(ctx context.Context, userID int64, limit int64) ([]*domain.Order, error)
	ListAll(ctx context.Context, input ListAllInput) ([]*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
}
