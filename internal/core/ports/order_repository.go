package ports

import (
	"context"

	"github.com/tgxchange/exchange-api/internal/core/domain"
)

// ListOrdersFilter carries the query parameters for listing orders.
type ListOrdersFilter struct {
	UserID int64              // 0 = no owner filter
	Status domain.OrderStatus // "" = no status filter
	Limit  int64              // max rows returned
}

// OrderRepository defines persistence operations for orders.
// The two update methods are atomic single-document writes: concurrent
// mutations of the same order never produce lost updates.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// UpdateTxid overwrites txid (empty clears it) on the order owned by
	// userID. Returns domain.ErrOrderNotFound when no such order exists or
	// the owner does not match, without distinguishing the two.
	UpdateTxid(ctx context.Context, id string, userID int64, txid string) error
	// UpdateStatus sets status and comment (empty clears the comment) and
	// bumps updated_at. Returns domain.ErrOrderNotFound for unknown ids.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, comment string) error
	// List returns orders matching filter, newest created_at first.
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, error)
}
