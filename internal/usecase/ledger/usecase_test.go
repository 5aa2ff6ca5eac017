package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"ruralbank/internal/adapter/repository/memory"
	"ruralbank/internal/domain/account"
	domain "ruralbank/internal/domain/ledger"
	"ruralbank/internal/domain/snapshot"
	"ruralbank/internal/domain/uow"
	"ruralbank/internal/testutil/accountmock"
	"ruralbank/internal/testutil/ledgermock"
	"ruralbank/internal/testutil/uowmock"
)

func approvedAccount(id, name string, balance float64) account.Account {
	return account.Account{
		ID: id, CustomerID: "cus-" + id, CustomerName: name,
		Balance: balance, Status: account.StatusApproved,
		CreatedAt: time.Now().UTC(),
	}
}

func seedStore(accs ...account.Account) *memory.Store {
	return memory.NewStore(&snapshot.Snapshot{Accounts: accs}, nil)
}

func balanceOf(t *testing.T, store *memory.Store, accountID string) float64 {
	t.Helper()
	for _, a := range store.Snapshot().Accounts {
		if a.ID == accountID {
			return a.Balance
		}
	}
	t.Fatalf("account %s not in snapshot", accountID)
	return 0
}

func transactionsOf(store *memory.Store, accountID string) []domain.Transaction {
	var out []domain.Transaction
	for _, tx := range store.Snapshot().Transactions {
		if tx.AccountID == accountID {
			out = append(out, tx)
		}
	}
	return out
}

func TestDeposit_AppendsAndUpdatesBalanceTogether(t *testing.T) {
	store := seedStore(approvedAccount("acc-1", "Maria Santos", 0))
	uc := NewUsecase(store)

	tx, err := uc.Deposit(context.Background(), "acc-1", 150, "usr-teller2")
	if err != nil {
		t.Fatalf("Deposit err: %v", err)
	}
	if tx.Type != domain.TypeDeposit || tx.Amount != 150 || tx.BalanceAfter != 150 {
		t.Fatalf("transaction mismatch: %+v", tx)
	}
	if tx.ProcessedBy != "usr-teller2" {
		t.Fatalf("ProcessedBy = %s", tx.ProcessedBy)
	}
	if got := balanceOf(t, store, "acc-1"); got != 150 {
		t.Fatalf("balance = %v, want 150", got)
	}
}

func TestDeposit_InvalidAmount(t *testing.T) {
	store := seedStore(approvedAccount("acc-1", "Maria Santos", 100))
	uc := NewUsecase(store)

	for _, amount := range []float64{0, -25} {
		_, err := uc.Deposit(context.Background(), "acc-1", amount, "usr-teller2")
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("amount %v: want ErrInvalidAmount, got %v", amount, err)
		}
	}
	if n := len(store.Snapshot().Transactions); n != 0 {
		t.Fatalf("expected empty log, got %d transactions", n)
	}
	if got := balanceOf(t, store, "acc-1"); got != 100 {
		t.Fatalf("balance changed to %v", got)
	}
}

func TestDeposit_RequiresApprovedAccount(t *testing.T) {
	pending := approvedAccount("acc-1", "Maria Santos", 0)
	pending.Status = account.StatusPending
	store := seedStore(pending)
	uc := NewUsecase(store)

	_, err := uc.Deposit(context.Background(), "acc-1", 50, "usr-teller2")
	if !errors.Is(err, account.ErrNotActive) {
		t.Fatalf("want ErrNotActive, got %v", err)
	}
}

func TestDeposit_UnknownAccount(t *testing.T) {
	store := seedStore()
	uc := NewUsecase(store)

	_, err := uc.Deposit(context.Background(), "acc-missing", 50, "usr-teller2")
	if !errors.Is(err, account.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestWithdraw_InsufficientFundsLeavesStateUntouched(t *testing.T) {
	store := seedStore(approvedAccount("acc-1", "Maria Santos", 80))
	uc := NewUsecase(store)

	_, err := uc.Withdraw(context.Background(), "acc-1", 100, "usr-teller2")
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if got := balanceOf(t, store, "acc-1"); got != 80 {
		t.Fatalf("balance = %v, want 80", got)
	}
	if n := len(store.Snapshot().Transactions); n != 0 {
		t.Fatalf("expected empty log, got %d transactions", n)
	}
}

func TestWithdraw_Success(t *testing.T) {
	store := seedStore(approvedAccount("acc-1", "Maria Santos", 200))
	uc := NewUsecase(store)

	tx, err := uc.Withdraw(context.Background(), "acc-1", 75, "usr-teller2")
	if err != nil {
		t.Fatalf("Withdraw err: %v", err)
	}
	if tx.Type != domain.TypeWithdrawal || tx.BalanceAfter != 125 {
		t.Fatalf("transaction mismatch: %+v", tx)
	}
	if got := balanceOf(t, store, "acc-1"); got != 125 {
		t.Fatalf("balance = %v, want 125", got)
	}
}

func TestTransfer_TwoLegsCrossReferenced(t *testing.T) {
	store := seedStore(
		approvedAccount("acc-1", "Maria Santos", 500),
		approvedAccount("acc-2", "Jose Reyes", 100),
	)
	uc := NewUsecase(store)

	outLeg, inLeg, err := uc.Transfer(context.Background(), "acc-1", "acc-2", 100, "usr-teller2")
	if err != nil {
		t.Fatalf("Transfer err: %v", err)
	}
	if outLeg.Type != domain.TypeTransferOut || outLeg.AccountID != "acc-1" || outLeg.RelatedAccountID != "acc-2" {
		t.Fatalf("out leg mismatch: %+v", outLeg)
	}
	if inLeg.Type != domain.TypeTransferIn || inLeg.AccountID != "acc-2" || inLeg.RelatedAccountID != "acc-1" {
		t.Fatalf("in leg mismatch: %+v", inLeg)
	}
	if outLeg.Description != "Transfer to Jose Reyes" || inLeg.Description != "Transfer from Maria Santos" {
		t.Fatalf("descriptions: %q / %q", outLeg.Description, inLeg.Description)
	}
	if got := balanceOf(t, store, "acc-1"); got != 400 {
		t.Fatalf("source balance = %v, want 400", got)
	}
	if got := balanceOf(t, store, "acc-2"); got != 200 {
		t.Fatalf("destination balance = %v, want 200", got)
	}
	if n := len(store.Snapshot().Transactions); n != 2 {
		t.Fatalf("want exactly 2 transactions, got %d", n)
	}
}

func TestTransfer_SameAccount(t *testing.T) {
	store := seedStore(approvedAccount("acc-1", "Maria Santos", 500))
	uc := NewUsecase(store)

	_, _, err := uc.Transfer(context.Background(), "acc-1", "acc-1", 50, "usr-teller2")
	if !errors.Is(err, domain.ErrSameAccount) {
		t.Fatalf("want ErrSameAccount, got %v", err)
	}
}

func TestTransfer_InsufficientFundsIsAllOrNothing(t *testing.T) {
	store := seedStore(
		approvedAccount("acc-1", "Maria Santos", 30),
		approvedAccount("acc-2", "Jose Reyes", 100),
	)
	uc := NewUsecase(store)

	_, _, err := uc.Transfer(context.Background(), "acc-1", "acc-2", 100, "usr-teller2")
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if got := balanceOf(t, store, "acc-1"); got != 30 {
		t.Fatalf("source balance = %v, want 30", got)
	}
	if got := balanceOf(t, store, "acc-2"); got != 100 {
		t.Fatalf("destination balance = %v, want 100", got)
	}
	if n := len(store.Snapshot().Transactions); n != 0 {
		t.Fatalf("expected empty log, got %d transactions", n)
	}
}

// After every operation the account balance must equal the balanceAfter of
// its most recently created transaction.
func TestBalanceMatchesLatestTransaction(t *testing.T) {
	store := seedStore(
		approvedAccount("acc-1", "Maria Santos", 0),
		approvedAccount("acc-2", "Jose Reyes", 0),
	)
	uc := NewUsecase(store)
	ctx := context.Background()

	ops := []func() error{
		func() error { _, err := uc.Deposit(ctx, "acc-1", 500, "t"); return err },
		func() error { _, err := uc.Deposit(ctx, "acc-2", 250, "t"); return err },
		func() error { _, err := uc.Withdraw(ctx, "acc-1", 120, "t"); return err },
		func() error { _, _, err := uc.Transfer(ctx, "acc-1", "acc-2", 80, "t"); return err },
		func() error { _, err := uc.Deposit(ctx, "acc-1", 10, "t"); return err },
	}
	for i, op := range ops {
		if err := op(); err != nil {
			t.Fatalf("op %d: %v", i, err)
		}
		for _, id := range []string{"acc-1", "acc-2"} {
			txs := transactionsOf(store, id)
			if len(txs) == 0 {
				continue
			}
			latest := txs[len(txs)-1]
			if got := balanceOf(t, store, id); got != latest.BalanceAfter {
				t.Fatalf("op %d: %s balance %v != latest balanceAfter %v", i, id, got, latest.BalanceAfter)
			}
		}
	}
}

// A failing append must abort the whole unit of work: the balance write
// never happens without the audit record.
func TestDeposit_AppendFailureAbortsBalanceWrite(t *testing.T) {
	appendErr := errors.New("append failed")
	accounts := &accountmock.Repo{
		GetFn: func(ctx context.Context, id string) (*account.Account, error) {
			a := approvedAccount(id, "Maria Santos", 100)
			return &a, nil
		},
		SaveFn: func(ctx context.Context, a *account.Account) error {
			t.Fatalf("Save must not be called after a failed append")
			return nil
		},
	}
	txns := &ledgermock.Repo{
		AppendFn: func(ctx context.Context, tx *domain.Transaction) error { return appendErr },
	}
	tx := uowmock.Passthrough(uow.Repos{Accounts: accounts, Transactions: txns})

	_, err := NewUsecase(tx).Deposit(context.Background(), "acc-1", 50, "usr-teller2")
	if !errors.Is(err, appendErr) {
		t.Fatalf("want append error, got %v", err)
	}
}
