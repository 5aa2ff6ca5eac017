package accountmock

import (
	"context"

	domain "ruralbank/internal/domain/account"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the methods a test needs.
type Repo struct {
	CreateFn         func(ctx context.Context, a *domain.Account) error
	GetFn            func(ctx context.Context, accountID string) (*domain.Account, error)
	SaveFn           func(ctx context.Context, a *domain.Account) error
	ListFn           func(ctx context.Context) ([]domain.Account, error)
	ListByCustomerFn func(ctx context.Context, customerID string) ([]domain.Account, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, accountID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, a *domain.Account) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Account, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, nil
}
