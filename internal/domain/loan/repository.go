package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Get(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	List(ctx context.Context) ([]Loan, error)
	ListByAccount(ctx context.Context, accountID string) ([]Loan, error)
}
