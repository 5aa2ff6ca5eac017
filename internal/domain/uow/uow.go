package uow

import (
	"context"
	"errors"

	"ruralbank/internal/domain/account"
	"ruralbank/internal/domain/identity"
	"ruralbank/internal/domain/ledger"
	"ruralbank/internal/domain/loan"
)

// ErrDuplicateID is returned by any repository when a generated id collides
// with a stored record. Collisions fail loudly; nothing is ever silently
// overwritten.
var ErrDuplicateID = errors.New("duplicate id")

type Repos struct {
	Identities   identity.Repository
	Accounts     account.Repository
	Transactions ledger.Repository
	Loans        loan.Repository
}

// UnitOfWork is the atomicity boundary for every engine mutation. WithinTx
// stages all writes made through the passed repositories and commits them
// together, or discards them all when fn errors — a failed operation leaves
// the collections exactly as they were before the call.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// View runs fn against the committed state with no write access implied.
	View(ctx context.Context, fn func(r Repos) error) error
}
