package registry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ruralbank/internal/domain/account"
	"ruralbank/internal/domain/uow"
	identityuc "ruralbank/internal/usecase/identity"
	"ruralbank/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type CreateAccountInput struct {
	CustomerName string `json:"customer_name"`
	DateOfBirth  string `json:"date_of_birth"`
	Address      string `json:"address"`
	IDType       string `json:"id_type"`
	IDNumber     string `json:"id_number"`
}

// CreateAccount opens a pending zero-balance account and registers the
// customer identity in the same unit of work. The UI pre-validates the
// profile, but callers are not trusted: every required field is re-checked.
func (u *Usecase) CreateAccount(ctx context.Context, in CreateAccountInput) (*account.Account, error) {
	required := []struct{ field, value string }{
		{"customer_name", in.CustomerName},
		{"date_of_birth", in.DateOfBirth},
		{"address", in.Address},
		{"id_type", in.IDType},
		{"id_number", in.IDNumber},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: %s is required", account.ErrValidation, f.field)
		}
	}

	customerID := id.NewPrefixed("cus")
	acc := &account.Account{
		ID:           id.NewPrefixed("acc"),
		CustomerID:   customerID,
		CustomerName: in.CustomerName,
		DateOfBirth:  in.DateOfBirth,
		Address:      in.Address,
		IDType:       in.IDType,
		IDNumber:     in.IDNumber,
		Balance:      0,
		Status:       account.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Accounts.Create(ctx, acc); err != nil {
			return err
		}
		usr := identityuc.NewCustomerIdentity(customerID, in.CustomerName)
		return r.Identities.Create(ctx, &usr)
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// Approve moves a pending account to approved. Both terminal states are
// final: re-approving an already-approved or rejected account fails.
func (u *Usecase) Approve(ctx context.Context, accountID, approverID string) (*account.Account, error) {
	var out *account.Account
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		acc, err := r.Accounts.Get(ctx, accountID)
		if err != nil {
			return err
		}
		if acc.Status != account.StatusPending {
			return fmt.Errorf("%w: account %s is %s", account.ErrInvalidTransition, acc.ID, acc.Status)
		}
		acc.Status = account.StatusApproved
		acc.ApprovedBy = approverID
		if err := r.Accounts.Save(ctx, acc); err != nil {
			return err
		}
		out = acc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reject moves a pending account to rejected. A non-empty reason is
// mandatory.
func (u *Usecase) Reject(ctx context.Context, accountID, approverID, reason string) (*account.Account, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", account.ErrValidation)
	}
	var out *account.Account
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		acc, err := r.Accounts.Get(ctx, accountID)
		if err != nil {
			return err
		}
		if acc.Status != account.StatusPending {
			return fmt.Errorf("%w: account %s is %s", account.ErrInvalidTransition, acc.ID, acc.Status)
		}
		acc.Status = account.StatusRejected
		acc.RejectedBy = approverID
		acc.RejectionReason = reason
		if err := r.Accounts.Save(ctx, acc); err != nil {
			return err
		}
		out = acc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Find(ctx context.Context, accountID string) (*account.Account, error) {
	var out *account.Account
	err := u.uow.View(ctx, func(r uow.Repos) error {
		acc, err := r.Accounts.Get(ctx, accountID)
		if err != nil {
			return err
		}
		out = acc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns every account, optionally filtered by status ("" means all).
// Backs the admin approval queue and the teller account directory.
func (u *Usecase) List(ctx context.Context, status account.Status) ([]account.Account, error) {
	var out []account.Account
	err := u.uow.View(ctx, func(r uow.Repos) error {
		all, err := r.Accounts.List(ctx)
		if err != nil {
			return err
		}
		if status == "" {
			out = all
			return nil
		}
		for _, a := range all {
			if a.Status == status {
				out = append(out, a)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
