package ports

import (
	"context"

	"github.com/tgxchange/exchange-api/internal/core/domain"
)

// OrderNotification is the human-facing summary of a freshly created order.
type OrderNotification struct {
	OrderID       string
	UserID        int64
	Username      string
	Asset         domain.Asset
	Amount        float64
	RubAmount     float64
	ReceiveMethod domain.ReceiveMethod
	Address       string
}

// OrderNotifier delivers best-effort alerts about new orders. Implementations
// make at most one attempt; callers never treat a failure as fatal.
type OrderNotifier interface {
	OrderCreated(ctx context.Context, n OrderNotification) error
}
