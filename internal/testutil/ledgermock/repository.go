package ledgermock

import (
	"context"

	domain "ruralbank/internal/domain/ledger"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	AppendFn        func(ctx context.Context, t *domain.Transaction) error
	ListByAccountFn func(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

func (m *Repo) Append(ctx context.Context, t *domain.Transaction) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	if m.ListByAccountFn != nil {
		return m.ListByAccountFn(ctx, accountID)
	}
	return nil, nil
}
