package memory

import (
	"time"

	"ruralbank/internal/domain/account"
	"ruralbank/internal/domain/identity"
	"ruralbank/internal/domain/ledger"
	"ruralbank/internal/domain/loan"
	"ruralbank/internal/domain/snapshot"
)

// state holds the four collections in insertion order. All fields of the
// element types are plain values, so copying the slices is a deep copy.
type state struct {
	users        []identity.User
	accounts     []account.Account
	transactions []ledger.Transaction
	loans        []loan.Loan
}

func newState(snap *snapshot.Snapshot) *state {
	st := &state{}
	if snap == nil {
		return st
	}
	st.users = append(st.users, snap.Identities...)
	st.accounts = append(st.accounts, snap.Accounts...)
	st.transactions = append(st.transactions, snap.Transactions...)
	st.loans = append(st.loans, snap.Loans...)
	return st
}

func (s *state) clone() *state {
	c := &state{
		users:        make([]identity.User, len(s.users)),
		accounts:     make([]account.Account, len(s.accounts)),
		transactions: make([]ledger.Transaction, len(s.transactions)),
		loans:        make([]loan.Loan, len(s.loans)),
	}
	copy(c.users, s.users)
	copy(c.accounts, s.accounts)
	copy(c.transactions, s.transactions)
	copy(c.loans, s.loans)
	return c
}

func (s *state) snapshot() *snapshot.Snapshot {
	snap := &snapshot.Snapshot{
		Meta: snapshot.Meta{
			Format:  "ruralbank_snapshot",
			Version: snapshot.FormatVersion,
			SavedAt: time.Now().UTC(),
		},
		Identities:   make([]identity.User, len(s.users)),
		Accounts:     make([]account.Account, len(s.accounts)),
		Transactions: make([]ledger.Transaction, len(s.transactions)),
		Loans:        make([]loan.Loan, len(s.loans)),
	}
	copy(snap.Identities, s.users)
	copy(snap.Accounts, s.accounts)
	copy(snap.Transactions, s.transactions)
	copy(snap.Loans, s.loans)
	return snap
}
