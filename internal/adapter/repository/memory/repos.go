package memory

import (
	"context"
	"fmt"

	"ruralbank/internal/domain/account"
	"ruralbank/internal/domain/identity"
	"ruralbank/internal/domain/ledger"
	"ruralbank/internal/domain/loan"
	"ruralbank/internal/domain/uow"
)

func reposFor(st *state) uow.Repos {
	return uow.Repos{
		Identities:   &identityRepo{st: st},
		Accounts:     &accountRepo{st: st},
		Transactions: &transactionRepo{st: st},
		Loans:        &loanRepo{st: st},
	}
}

type identityRepo struct{ st *state }

func (r *identityRepo) Create(ctx context.Context, u *identity.User) error {
	for i := range r.st.users {
		if r.st.users[i].ID == u.ID {
			return fmt.Errorf("%w: user %s", uow.ErrDuplicateID, u.ID)
		}
		if r.st.users[i].Username == u.Username {
			return fmt.Errorf("%w: %s", identity.ErrDuplicateUsername, u.Username)
		}
	}
	r.st.users = append(r.st.users, *u)
	return nil
}

func (r *identityRepo) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	for i := range r.st.users {
		if r.st.users[i].Username == username {
			cp := r.st.users[i]
			return &cp, nil
		}
	}
	return nil, identity.ErrInvalidCredentials
}

func (r *identityRepo) FindByID(ctx context.Context, id string) (*identity.User, error) {
	for i := range r.st.users {
		if r.st.users[i].ID == id {
			cp := r.st.users[i]
			return &cp, nil
		}
	}
	return nil, identity.ErrInvalidCredentials
}

type accountRepo struct{ st *state }

func (r *accountRepo) Create(ctx context.Context, a *account.Account) error {
	for i := range r.st.accounts {
		if r.st.accounts[i].ID == a.ID {
			return fmt.Errorf("%w: account %s", uow.ErrDuplicateID, a.ID)
		}
	}
	r.st.accounts = append(r.st.accounts, *a)
	return nil
}

func (r *accountRepo) Get(ctx context.Context, accountID string) (*account.Account, error) {
	for i := range r.st.accounts {
		if r.st.accounts[i].ID == accountID {
			cp := r.st.accounts[i]
			return &cp, nil
		}
	}
	return nil, account.ErrNotFound
}

func (r *accountRepo) Save(ctx context.Context, a *account.Account) error {
	for i := range r.st.accounts {
		if r.st.accounts[i].ID == a.ID {
			r.st.accounts[i] = *a
			return nil
		}
	}
	return account.ErrNotFound
}

func (r *accountRepo) List(ctx context.Context) ([]account.Account, error) {
	out := make([]account.Account, len(r.st.accounts))
	copy(out, r.st.accounts)
	return out, nil
}

func (r *accountRepo) ListByCustomer(ctx context.Context, customerID string) ([]account.Account, error) {
	var out []account.Account
	for i := range r.st.accounts {
		if r.st.accounts[i].CustomerID == customerID {
			out = append(out, r.st.accounts[i])
		}
	}
	return out, nil
}

type transactionRepo struct{ st *state }

func (r *transactionRepo) Append(ctx context.Context, t *ledger.Transaction) error {
	for i := range r.st.transactions {
		if r.st.transactions[i].ID == t.ID {
			return fmt.Errorf("%w: transaction %s", uow.ErrDuplicateID, t.ID)
		}
	}
	r.st.transactions = append(r.st.transactions, *t)
	return nil
}

func (r *transactionRepo) ListByAccount(ctx context.Context, accountID string) ([]ledger.Transaction, error) {
	var out []ledger.Transaction
	for i := range r.st.transactions {
		if r.st.transactions[i].AccountID == accountID {
			out = append(out, r.st.transactions[i])
		}
	}
	return out, nil
}

type loanRepo struct{ st *state }

func (r *loanRepo) Create(ctx context.Context, l *loan.Loan) error {
	for i := range r.st.loans {
		if r.st.loans[i].ID == l.ID {
			return fmt.Errorf("%w: loan %s", uow.ErrDuplicateID, l.ID)
		}
	}
	r.st.loans = append(r.st.loans, *l)
	return nil
}

func (r *loanRepo) Get(ctx context.Context, loanID string) (*loan.Loan, error) {
	for i := range r.st.loans {
		if r.st.loans[i].ID == loanID {
			cp := r.st.loans[i]
			return &cp, nil
		}
	}
	return nil, loan.ErrNotFound
}

func (r *loanRepo) Save(ctx context.Context, l *loan.Loan) error {
	for i := range r.st.loans {
		if r.st.loans[i].ID == l.ID {
			r.st.loans[i] = *l
			return nil
		}
	}
	return loan.ErrNotFound
}

func (r *loanRepo) List(ctx context.Context) ([]loan.Loan, error) {
	out := make([]loan.Loan, len(r.st.loans))
	copy(out, r.st.loans)
	return out, nil
}

func (r *loanRepo) ListByAccount(ctx context.Context, accountID string) ([]loan.Loan, error) {
	var out []loan.Loan
	for i := range r.st.loans {
		if r.st.loans[i].AccountID == accountID {
			out = append(out, r.st.loans[i])
		}
	}
	return out, nil
}
