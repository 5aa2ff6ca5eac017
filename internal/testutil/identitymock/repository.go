package identitymock

import (
	"context"

	domain "ruralbank/internal/domain/identity"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, u *domain.User) error
	FindByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	FindByIDFn       func(ctx context.Context, id string) (*domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFn != nil {
		return m.FindByUsernameFn(ctx, username)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *Repo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, domain.ErrInvalidCredentials
}
