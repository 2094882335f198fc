package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 24 * time.Hour

// CreateGuard implements the order-creation idempotency store on Redis.
// Key format: order:idem:<idempotency_key> → order id, expiring after guardTTL.
type CreateGuard struct {
	client *redis.Client
}

// NewCreateGuard creates a CreateGuard wrapping the given Redis client.
func NewCreateGuard(client *redis.Client) *CreateGuard {
	return &CreateGuard{client: client}
}

// Lookup returns the order id previously recorded for key, or "" when the key
// has not been seen.
func (g *CreateGuard) Lookup(ctx context.Context, key string) (string, error) {
	id, err := g.client.Get(ctx, g.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, nil
}

// Remember records that key produced orderID (expires after guardTTL).
func (g *CreateGuard) Remember(ctx context.Context, key, orderID string) error {
	return g.client.Set(ctx, g.key(key), orderID, guardTTL).Err()
}

func (g *CreateGuard) key(key string) string {
	return "order:idem:" + key
}
