package identity

import (
	"context"

	"ruralbank/internal/domain/identity"
	"ruralbank/internal/domain/uow"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Authenticate resolves a username/secret pair to a role-bearing session.
// Exact match on both fields; no lockout, no rate limiting.
func (u *Usecase) Authenticate(ctx context.Context, username, secret string) (*identity.Session, error) {
	var sess *identity.Session
	err := u.uow.View(ctx, func(r uow.Repos) error {
		usr, err := r.Identities.FindByUsername(ctx, username)
		if err != nil {
			return identity.ErrInvalidCredentials
		}
		if usr.Secret != secret {
			return identity.ErrInvalidCredentials
		}
		sess = &identity.Session{
			UserID:      usr.ID,
			Username:    usr.Username,
			Role:        usr.Role,
			DisplayName: usr.DisplayName,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// NewCustomerIdentity builds the customer-role identity registered alongside
// a new account application. The customer id doubles as the username and the
// secret is the fixed default; the account registry creates the record inside
// its own unit of work so account and identity commit together.
func NewCustomerIdentity(customerID, customerName string) identity.User {
	return identity.User{
		ID:          customerID,
		Username:    customerID,
		Secret:      identity.DefaultCustomerSecret,
		Role:        identity.RoleCustomer,
		DisplayName: customerName,
	}
}
