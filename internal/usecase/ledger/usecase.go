package ledger

import (
	"context"
	"fmt"
	"time"

	"ruralbank/internal/domain/account"
	"ruralbank/internal/domain/ledger"
	"ruralbank/internal/domain/loan"
	"ruralbank/internal/domain/uow"
	"ruralbank/pkg/id"
)

// Usecase is the money-movement core. Every operation appends to the audit
// trail and updates the account balance inside a single unit of work, so an
// observer can never see one without the other.
type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

func activeAccount(ctx context.Context, r uow.Repos, accountID string) (*account.Account, error) {
	acc, err := r.Accounts.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc.Status != account.StatusApproved {
		return nil, fmt.Errorf("%w: account %s is %s", account.ErrNotActive, acc.ID, acc.Status)
	}
	return acc, nil
}

func (u *Usecase) Deposit(ctx context.Context, accountID string, amount float64, actorID string) (*ledger.Transaction, error) {
	if amount <= 0 {
		return nil, ledger.ErrInvalidAmount
	}
	var out *ledger.Transaction
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		acc, err := activeAccount(ctx, r, accountID)
		if err != nil {
			return err
		}
		acc.Balance += amount
		t := &ledger.Transaction{
			ID:           id.NewPrefixed("txn"),
			AccountID:    acc.ID,
			Type:         ledger.TypeDeposit,
			Amount:       amount,
			BalanceAfter: acc.Balance,
			Description:  "Cash Deposit",
			ProcessedBy:  actorID,
			CreatedAt:    time.Now().UTC(),
		}
		if err := r.Transactions.Append(ctx, t); err != nil {
			return err
		}
		if err := r.Accounts.Save(ctx, acc); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Withdraw(ctx context.Context, accountID string, amount float64, actorID string) (*ledger.Transaction, error) {
	if amount <= 0 {
		return nil, ledger.ErrInvalidAmount
	}
	var out *ledger.Transaction
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		acc, err := activeAccount(ctx, r, accountID)
		if err != nil {
			return err
		}
		if acc.Balance < amount {
			return fmt.Errorf("%w: balance %.2f, requested %.2f", ledger.ErrInsufficientFunds, acc.Balance, amount)
		}
		acc.Balance -= amount
		t := &ledger.Transaction{
			ID:           id.NewPrefixed("txn"),
			AccountID:    acc.ID,
			Type:         ledger.TypeWithdrawal,
			Amount:       amount,
			BalanceAfter: acc.Balance,
			Description:  "Cash Withdrawal",
			ProcessedBy:  actorID,
			CreatedAt:    time.Now().UTC(),
		}
		if err := r.Transactions.Append(ctx, t); err != nil {
			return err
		}
		if err := r.Accounts.Save(ctx, acc); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Transfer moves funds between two approved accounts. Both legs and both
// balance updates commit as one unit: there is no observable state with only
// one leg recorded.
func (u *Usecase) Transfer(ctx context.Context, fromID, toID string, amount float64, actorID string) (*ledger.Transaction, *ledger.Transaction, error) {
	if fromID == toID {
		return nil, nil, ledger.ErrSameAccount
	}
	if amount <= 0 {
		return nil, nil, ledger.ErrInvalidAmount
	}
	var outLeg, inLeg *ledger.Transaction
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		from, err := activeAccount(ctx, r, fromID)
		if err != nil {
			return err
		}
		to, err := activeAccount(ctx, r, toID)
		if err != nil {
			return err
		}
		if from.Balance < amount {
			return fmt.Errorf("%w: balance %.2f, requested %.2f", ledger.ErrInsufficientFunds, from.Balance, amount)
		}

		now := time.Now().UTC()
		from.Balance -= amount
		to.Balance += amount

		debit := &ledger.Transaction{
			ID:               id.NewPrefixed("txn"),
			AccountID:        from.ID,
			Type:             ledger.TypeTransferOut,
			Amount:           amount,
			BalanceAfter:     from.Balance,
			Description:      "Transfer to " + to.CustomerName,
			RelatedAccountID: to.ID,
			ProcessedBy:      actorID,
			CreatedAt:        now,
		}
		credit := &ledger.Transaction{
			ID:               id.NewPrefixed("txn"),
			AccountID:        to.ID,
			Type:             ledger.TypeTransferIn,
			Amount:           amount,
			BalanceAfter:     to.Balance,
			Description:      "Transfer from " + from.CustomerName,
			RelatedAccountID: from.ID,
			ProcessedBy:      actorID,
			CreatedAt:        now,
		}

		if err := r.Transactions.Append(ctx, debit); err != nil {
			return err
		}
		if err := r.Transactions.Append(ctx, credit); err != nil {
			return err
		}
		if err := r.Accounts.Save(ctx, from); err != nil {
			return err
		}
		if err := r.Accounts.Save(ctx, to); err != nil {
			return err
		}
		outLeg, inLeg = debit, credit
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return outLeg, inLeg, nil
}

// RecordLoanDisbursement credits a newly approved loan's principal into its
// account. It runs inside the caller's unit of work (the loan engine stages
// the approval and the disbursement together), which is why it takes the
// repos rather than opening its own transaction.
func RecordLoanDisbursement(ctx context.Context, r uow.Repos, ln *loan.Loan, actorID string) (*ledger.Transaction, error) {
	acc, err := activeAccount(ctx, r, ln.AccountID)
	if err != nil {
		return nil, err
	}
	acc.Balance += ln.Amount
	t := &ledger.Transaction{
		ID:           id.NewPrefixed("txn"),
		AccountID:    acc.ID,
		Type:         ledger.TypeLoanDisbursement,
		Amount:       ln.Amount,
		BalanceAfter: acc.Balance,
		Description:  "Loan Disbursement - " + ln.ID,
		ProcessedBy:  actorID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.Transactions.Append(ctx, t); err != nil {
		return nil, err
	}
	if err := r.Accounts.Save(ctx, acc); err != nil {
		return nil, err
	}
	return t, nil
}
