package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tgxchange/exchange-api/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository implements ports.UserRepository using MongoDB. The Telegram
// user id is the document _id, so concurrent upserts for the same identity
// collapse into last-writer-wins updates of the display fields.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// Upsert inserts the user or refreshes its mutable fields. created_at is set
// only on first insert.
func (r *UserRepository) Upsert(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": u.ID}
	update := bson.M{
		"$set": bson.M{
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"username":   u.Username,
			"role":       u.Role,
			"updated_at": u.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"created_at": u.CreatedAt,
		},
	}

	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}
