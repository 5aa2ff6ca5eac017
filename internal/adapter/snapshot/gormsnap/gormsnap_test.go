package gormsnap

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ruralbank/internal/domain/account"
	"ruralbank/internal/domain/identity"
	"ruralbank/internal/domain/ledger"
	"ruralbank/internal/domain/loan"
	"ruralbank/internal/domain/snapshot"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	store, err := New(db)
	if err != nil {
		t.Fatalf("New err: %v", err)
	}
	return store
}

func sampleSnapshot() *snapshot.Snapshot {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &snapshot.Snapshot{
		Meta:       snapshot.Meta{Format: "ruralbank_snapshot", Version: snapshot.FormatVersion, SavedAt: at},
		Identities: identity.SeedStaff(),
		Accounts: []account.Account{
			{ID: "acc-1", CustomerID: "cus-1", CustomerName: "Maria Santos", DateOfBirth: "1990-04-12",
				Address: "Purok 3, San Isidro", IDType: "national_id", IDNumber: "NID-4411-220",
				Balance: 150, Status: account.StatusApproved, ApprovedBy: "usr-admin", CreatedAt: at},
			{ID: "acc-2", CustomerID: "cus-2", CustomerName: "Jose Reyes", DateOfBirth: "1985-11-02",
				Address: "Sitio Bato", IDType: "drivers_license", IDNumber: "DL-99-120",
				Balance: 0, Status: account.StatusRejected, RejectedBy: "usr-admin",
				RejectionReason: "incomplete documents", CreatedAt: at},
		},
		Transactions: []ledger.Transaction{
			{ID: "txn-1", AccountID: "acc-1", Type: ledger.TypeDeposit, Amount: 150, BalanceAfter: 150,
				Description: "Cash Deposit", ProcessedBy: "usr-teller2", CreatedAt: at},
			{ID: "txn-2", AccountID: "acc-1", Type: ledger.TypeTransferOut, Amount: 50, BalanceAfter: 100,
				Description: "Transfer to Jose Reyes", RelatedAccountID: "acc-2",
				ProcessedBy: "usr-teller2", CreatedAt: at},
		},
		Loans: []loan.Loan{
			{ID: "ln-1", AccountID: "acc-1", CustomerName: "Maria Santos", Amount: 1000, InterestRate: 10,
				TermYears: 2, TotalPayable: 1200, MonthlyAmortization: 50,
				Status: loan.StatusPending, CreatedAt: at},
		},
	}
}

func TestLoad_EmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load(context.Background())
	if !errors.Is(err, snapshot.ErrNoSnapshot) {
		t.Fatalf("want ErrNoSnapshot, got %v", err)
	}
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := sampleSnapshot()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save err: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if got.Meta.Format != want.Meta.Format || got.Meta.Version != want.Meta.Version {
		t.Fatalf("meta mismatch: %+v", got.Meta)
	}
	if len(got.Identities) != len(want.Identities) {
		t.Fatalf("identities: want %d, got %d", len(want.Identities), len(got.Identities))
	}
	for i := range want.Identities {
		if got.Identities[i] != want.Identities[i] {
			t.Fatalf("identity %d mismatch:\nwant %+v\ngot  %+v", i, want.Identities[i], got.Identities[i])
		}
	}
	if len(got.Accounts) != len(want.Accounts) {
		t.Fatalf("accounts: want %d, got %d", len(want.Accounts), len(got.Accounts))
	}
	for i := range want.Accounts {
		w, g := want.Accounts[i], got.Accounts[i]
		if !g.CreatedAt.Equal(w.CreatedAt) {
			t.Fatalf("account %d createdAt: want %v, got %v", i, w.CreatedAt, g.CreatedAt)
		}
		g.CreatedAt, w.CreatedAt = time.Time{}, time.Time{}
		if g != w {
			t.Fatalf("account %d mismatch:\nwant %+v\ngot  %+v", i, w, g)
		}
	}
	if len(got.Transactions) != len(want.Transactions) {
		t.Fatalf("transactions: want %d, got %d", len(want.Transactions), len(got.Transactions))
	}
	for i := range want.Transactions {
		w, g := want.Transactions[i], got.Transactions[i]
		if !g.CreatedAt.Equal(w.CreatedAt) {
			t.Fatalf("transaction %d createdAt: want %v, got %v", i, w.CreatedAt, g.CreatedAt)
		}
		g.CreatedAt, w.CreatedAt = time.Time{}, time.Time{}
		if g != w {
			t.Fatalf("transaction %d mismatch:\nwant %+v\ngot  %+v", i, w, g)
		}
	}
	if len(got.Loans) != 1 {
		t.Fatalf("loans: want 1, got %d", len(got.Loans))
	}
	if got.Loans[0].TotalPayable != 1200 || got.Loans[0].MonthlyAmortization != 50 {
		t.Fatalf("loan terms mismatch: %+v", got.Loans[0])
	}
}

// Insertion order is the only ordering the engine relies on; the seq column
// must reproduce it exactly.
func TestLoad_PreservesInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	snap := sampleSnapshot()
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("Save err: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if got.Transactions[0].ID != "txn-1" || got.Transactions[1].ID != "txn-2" {
		t.Fatalf("transaction order changed: %s, %s", got.Transactions[0].ID, got.Transactions[1].ID)
	}
	if got.Accounts[0].ID != "acc-1" || got.Accounts[1].ID != "acc-2" {
		t.Fatalf("account order changed: %s, %s", got.Accounts[0].ID, got.Accounts[1].ID)
	}
}

func TestSave_ReplacesPreviousSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("first Save err: %v", err)
	}

	second := sampleSnapshot()
	second.Accounts = second.Accounts[:1]
	second.Accounts[0].Balance = 75
	second.Transactions = nil
	second.Loans = nil
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("second Save err: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if len(got.Accounts) != 1 || got.Accounts[0].Balance != 75 {
		t.Fatalf("stale rows survived the replace: %+v", got.Accounts)
	}
	if len(got.Transactions) != 0 || len(got.Loans) != 0 {
		t.Fatalf("cleared collections came back: %d transactions, %d loans",
			len(got.Transactions), len(got.Loans))
	}
}
