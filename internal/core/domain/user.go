package domain

import "time"

const (
	RoleOperator = "operator"
	RoleClient   = "client"
)

// User models a Telegram identity seen by the Mini-App.
// Display fields are refreshed on every authenticated request; Role is
// recomputed from the operator allow-list per request and persisted only as a
// convenience copy, never read back as the source of truth.
type User struct {
	ID        int64     `json:"id" bson:"_id"`
	FirstName string    `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Username  string    `json:"username,omitempty" bson:"username,omitempty"`
	Role      string    `json:"role" bson:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ResolveRole derives the caller's role from allow-list membership.
func ResolveRole(id int64, operatorIDs map[int64]struct{}) string {
	if _, ok := operatorIDs[id]; ok {
		return RoleOperator
	}
	return RoleClient
}
