package snapshot

import (
	"context"
	"errors"
	"time"

	"ruralbank/internal/domain/account"
	"ruralbank/internal/domain/identity"
	"ruralbank/internal/domain/ledger"
	"ruralbank/internal/domain/loan"
)

// ErrNoSnapshot means the store holds no prior state; the caller seeds the
// default staff identities and starts empty.
var ErrNoSnapshot = errors.New("no snapshot stored")

const FormatVersion = 1

type Meta struct {
	Format  string    `json:"format"`
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
}

// Snapshot is the full serialized state of the four collections at one point
// in time. It is written as a whole after every committed mutation and read
// once at startup.
type Snapshot struct {
	Meta         Meta                 `json:"_meta"`
	Identities   []identity.User      `json:"identities"`
	Accounts     []account.Account    `json:"accounts"`
	Transactions []ledger.Transaction `json:"transactions"`
	Loans        []loan.Loan          `json:"loans"`
}

// Store is the persistence-adapter boundary. The in-memory state is
// authoritative; Save is a best-effort mirror and is not part of the
// atomicity boundary.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, s *Snapshot) error
}
