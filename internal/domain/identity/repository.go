package identity

import "context"

type Repository interface {
	// Create appends a new identity. Identities are append-only: there is no
	// update or delete for the lifetime of the snapshot.
	Create(ctx context.Context, u *User) error

	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}
