package ledger

import "context"

type Repository interface {
	// Append records a new transaction. There is no update or delete: the
	// transaction log is the system's audit trail.
	Append(ctx context.Context, t *Transaction) error

	ListByAccount(ctx context.Context, accountID string) ([]Transaction, error)
}
