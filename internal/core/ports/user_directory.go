package ports

import (
	"context"
)

// BillableUser is the directory row attached to per-user settlement reports.
type BillableUser struct {
	ID       int64
	FullName string
	Email    string
}

// UserDirectory resolves user identities for settlement reporting. User
// management itself lives outside this service.
type UserDirectory interface {
	// GetUser retrieves a user by identifier.
	GetUser(ctx context.Context, id int64) (*BillableUser, error)

	// Exists reports whether a user with the given identifier is known.
	Exists(ctx context.Context, id int64) (bool, error)
}
