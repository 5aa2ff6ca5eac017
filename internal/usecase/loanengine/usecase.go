package loanengine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ruralbank/internal/domain/account"
	domainLoan "ruralbank/internal/domain/loan"
	"ruralbank/internal/domain/uow"
	ledgeruc "ruralbank/internal/usecase/ledger"
	"ruralbank/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// PreviewTerms exposes the pure term computation for the application form.
func (u *Usecase) PreviewTerms(amount, ratePercent float64, termYears int) (domainLoan.Terms, error) {
	return domainLoan.ComputeTerms(amount, ratePercent, termYears)
}

type ApplyInput struct {
	AccountID    string  `json:"account_id"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	TermYears    int     `json:"term_years"`
}

// Apply files a pending loan application. Terms are computed once here and
// frozen on the record; later rule changes never touch existing loans.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*domainLoan.Loan, error) {
	terms, err := domainLoan.ComputeTerms(in.Amount, in.InterestRate, in.TermYears)
	if err != nil {
		return nil, err
	}

	var out *domainLoan.Loan
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		acc, err := r.Accounts.Get(ctx, in.AccountID)
		if err != nil {
			return err
		}
		if acc.Status != account.StatusApproved {
			return fmt.Errorf("%w: account %s is %s", account.ErrNotActive, acc.ID, acc.Status)
		}
		name := strings.TrimSpace(in.CustomerName)
		if name == "" {
			name = acc.CustomerName
		}
		l := &domainLoan.Loan{
			ID:                  id.NewPrefixed("ln"),
			AccountID:           acc.ID,
			CustomerName:        name,
			Amount:              in.Amount,
			InterestRate:        in.InterestRate,
			TermYears:           in.TermYears,
			TotalPayable:        terms.TotalPayable,
			MonthlyAmortization: terms.MonthlyAmortization,
			Status:              domainLoan.StatusPending,
			CreatedAt:           time.Now().UTC(),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Approve flips a pending loan to approved and disburses the principal, all
// in one unit of work. The disbursement is derived from the already-approved
// record: the status flip is staged first, then the ledger leg. A missing or
// inactive account fails the whole approval, so approval and disbursement
// can never diverge.
func (u *Usecase) Approve(ctx context.Context, loanID, approverID string) (*domainLoan.Loan, error) {
	var out *domainLoan.Loan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.Get(ctx, loanID)
		if err != nil {
			return err
		}
		if l.Status != domainLoan.StatusPending {
			return fmt.Errorf("%w: loan %s is %s", domainLoan.ErrInvalidTransition, l.ID, l.Status)
		}
		l.Status = domainLoan.StatusApproved
		l.ApprovedBy = approverID
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if _, err := ledgeruc.RecordLoanDisbursement(ctx, r, l, approverID); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reject closes a pending application with a mandatory reason. No financial
// side effect.
func (u *Usecase) Reject(ctx context.Context, loanID, approverID, reason string) (*domainLoan.Loan, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", account.ErrValidation)
	}
	var out *domainLoan.Loan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.Get(ctx, loanID)
		if err != nil {
			return err
		}
		if l.Status != domainLoan.StatusPending {
			return fmt.Errorf("%w: loan %s is %s", domainLoan.ErrInvalidTransition, l.ID, l.Status)
		}
		l.Status = domainLoan.StatusRejected
		l.RejectedBy = approverID
		l.RejectionReason = reason
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Find(ctx context.Context, loanID string) (*domainLoan.Loan, error) {
	var out *domainLoan.Loan
	err := u.uow.View(ctx, func(r uow.Repos) error {
		l, err := r.Loans.Get(ctx, loanID)
		if err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns every loan, optionally filtered by status ("" means all).
func (u *Usecase) List(ctx context.Context, status domainLoan.Status) ([]domainLoan.Loan, error) {
	var out []domainLoan.Loan
	err := u.uow.View(ctx, func(r uow.Repos) error {
		all, err := r.Loans.List(ctx)
		if err != nil {
			return err
		}
		if status == "" {
			out = all
			return nil
		}
		for _, l := range all {
			if l.Status == status {
				out = append(out, l)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
