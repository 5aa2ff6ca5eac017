package loanmock

import (
	"context"

	domain "ruralbank/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, l *domain.Loan) error
	GetFn           func(ctx context.Context, loanID string) (*domain.Loan, error)
	SaveFn          func(ctx context.Context, l *domain.Loan) error
	ListFn          func(ctx context.Context) ([]domain.Loan, error)
	ListByAccountFn func(ctx context.Context, accountID string) ([]domain.Loan, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Get(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByAccount(ctx context.Context, accountID string) ([]domain.Loan, error) {
	if m.ListByAccountFn != nil {
		return m.ListByAccountFn(ctx, accountID)
	}
	return nil, nil
}
