package session

import "context"

// Identity is the snapshot persisted between process runs so a restarted
// server can restore the signed-in user without a fresh login.
type Identity struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type SessionStorage interface {
	Save(ctx context.Context, identity Identity) error
	Load(ctx context.Context) (Identity, bool, error)
	Clear(ctx context.Context) error
}
