package filesnap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"ruralbank/internal/domain/account"
	"ruralbank/internal/domain/identity"
	"ruralbank/internal/domain/ledger"
	"ruralbank/internal/domain/snapshot"
)

func sampleSnapshot() *snapshot.Snapshot {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &snapshot.Snapshot{
		Meta: snapshot.Meta{Format: "ruralbank_snapshot", Version: snapshot.FormatVersion, SavedAt: at},
		Identities: []identity.User{
			{ID: "usr-admin", Username: "admin", Secret: "admin123", Role: identity.RoleAdmin, DisplayName: "Admin User"},
		},
		Accounts: []account.Account{
			{ID: "acc-1", CustomerID: "cus-1", CustomerName: "Maria Santos",
				Balance: 150, Status: account.StatusApproved, CreatedAt: at},
		},
		Transactions: []ledger.Transaction{
			{ID: "txn-1", AccountID: "acc-1", Type: ledger.TypeDeposit, Amount: 150,
				BalanceAfter: 150, Description: "Cash Deposit", ProcessedBy: "usr-teller2", CreatedAt: at},
		},
	}
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := New(path)
	ctx := context.Background()

	want := sampleSnapshot()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save err: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "absent.json"))

	_, err := store.Load(context.Background())
	if !errors.Is(err, snapshot.ErrNoSnapshot) {
		t.Fatalf("want ErrNoSnapshot, got %v", err)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := New(path).Load(context.Background())
	if err == nil || errors.Is(err, snapshot.ErrNoSnapshot) {
		t.Fatalf("corrupt file must surface a decode error, got %v", err)
	}
}

func TestSave_ReplacesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := New(path)
	ctx := context.Background()

	first := sampleSnapshot()
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("first Save err: %v", err)
	}

	second := sampleSnapshot()
	second.Accounts[0].Balance = 999
	second.Transactions = append(second.Transactions, ledger.Transaction{
		ID: "txn-2", AccountID: "acc-1", Type: ledger.TypeDeposit, Amount: 849,
		BalanceAfter: 999, Description: "Cash Deposit", ProcessedBy: "usr-teller2",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("second Save err: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if got.Accounts[0].Balance != 999 || len(got.Transactions) != 2 {
		t.Fatalf("second save not fully visible: %+v", got)
	}

	// The temp file must not linger after a successful rename.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}
