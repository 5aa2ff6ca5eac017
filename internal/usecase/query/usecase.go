// Package query holds the derived read views. Everything here is a pure
// projection over committed state: safe to call at any time, never mutating.
package query

import (
	"context"
	"sort"

	"ruralbank/internal/domain/account"
	"ruralbank/internal/domain/ledger"
	"ruralbank/internal/domain/loan"
	"ruralbank/internal/domain/uow"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// TransactionsByAccount returns the account's audit trail, most recent
// first. Equal timestamps keep insertion order (stable sort).
func (u *Usecase) TransactionsByAccount(ctx context.Context, accountID string) ([]ledger.Transaction, error) {
	var out []ledger.Transaction
	err := u.uow.View(ctx, func(r uow.Repos) error {
		list, err := r.Transactions.ListByAccount(ctx, accountID)
		if err != nil {
			return err
		}
		out = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// LoansByAccount returns the account's loans, most recent first, same
// ordering rule as transactions.
func (u *Usecase) LoansByAccount(ctx context.Context, accountID string) ([]loan.Loan, error) {
	var out []loan.Loan
	err := u.uow.View(ctx, func(r uow.Repos) error {
		list, err := r.Loans.ListByAccount(ctx, accountID)
		if err != nil {
			return err
		}
		out = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// AccountsByCustomer backs the customer dashboard.
func (u *Usecase) AccountsByCustomer(ctx context.Context, customerID string) ([]account.Account, error) {
	var out []account.Account
	err := u.uow.View(ctx, func(r uow.Repos) error {
		list, err := r.Accounts.ListByCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		out = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
