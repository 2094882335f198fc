package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tgxchange/exchange-api/internal/core/domain"
	"github.com/tgxchange/exchange-api/internal/core/ports"
	"github.com/tgxchange/exchange-api/internal/telegram"
)

// Identity is the authenticated caller derived from verified launch data.
type Identity struct {
	ID       int64
	Username string
	Role     string
}

// IdentityService verifies Telegram launch data and resolves the caller's
// role. It is the sole gate in front of every business operation.
type IdentityService struct {
	users       ports.UserRepository
	botToken    string
	operatorIDs map[int64]struct{}
	log         zerolog.Logger
}

func NewIdentityService(users ports.UserRepository, botToken string, operatorIDs map[int64]struct{}, log zerolog.Logger) *IdentityService {
	return &IdentityService{
		users:       users,
		botToken:    botToken,
		operatorIDs: operatorIDs,
		log:         log,
	}
}

// Resolve authenticates the raw initData string. On success it upserts the
// user record (refreshing display fields) and returns the identity with its
// role recomputed from the allow-list. The stored role is never consulted.
func (s *IdentityService) Resolve(ctx context.Context, initData string) (Identity, error) {
	if initData == "" {
		return Identity{}, domain.ErrUnauthorized
	}
	if !telegram.Verify(initData, s.botToken) {
		return Identity{}, domain.ErrUnauthorized
	}

	tu, ok := telegram.ParseUser(initData)
	if !ok {
		return Identity{}, domain.ErrUnauthorized
	}

	role := domain.ResolveRole(tu.ID, s.operatorIDs)

	now := time.Now().UTC()
	user := &domain.User{
		ID:        tu.ID,
		FirstName: tu.FirstName,
		LastName:  tu.LastName,
		Username:  tu.Username,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		// The upsert is a side effect of authentication, not a gate: a
		// storage hiccup must not lock users out.
		s.log.Warn().Err(err).Int64("user_id", tu.ID).Msg("user upsert failed")
	}

	return Identity{ID: tu.ID, Username: tu.Username, Role: role}, nil
}
