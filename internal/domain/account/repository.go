package account

import "context"

type Repository interface {
	Create(ctx context.Context, a *Account) error
	Get(ctx context.Context, accountID string) (*Account, error)
	Save(ctx context.Context, a *Account) error
	List(ctx context.Context) ([]Account, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Account, error)
}
