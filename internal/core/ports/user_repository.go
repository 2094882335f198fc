package ports

import (
	"context"

	"github.com/tgxchange/exchange-api/internal/core/domain"
)

// UserRepository persists Telegram identities. The store is write-only from
// the application's point of view: the role is recomputed from the allow-list
// on every request, never read back.
type UserRepository interface {
	// Upsert inserts the user if absent, otherwise refreshes the mutable
	// display fields and updated_at. Safe to race: last writer wins.
	Upsert(ctx context.Context, user *domain.User) error
}
