package loan

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrInvalidAmount covers non-positive principal, negative rate and
	// non-positive term.
	ErrInvalidAmount = errors.New("invalid loan amount or terms")
)

type Loan struct {
	ID           string  `json:"id"`
	AccountID    string  `json:"account_id"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
	// InterestRate is a flat annual percentage, e.g. 10 for 10%.
	InterestRate float64 `json:"interest_rate"`
	TermYears    int     `json:"term_years"`
	// TotalPayable and MonthlyAmortization are frozen at application time and
	// never recomputed, even if the rate rules change later.
	TotalPayable        float64   `json:"total_payable"`
	MonthlyAmortization float64   `json:"monthly_amortization"`
	Status              Status    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	ApprovedBy          string    `json:"approved_by,omitempty"`
	RejectedBy          string    `json:"rejected_by,omitempty"`
	RejectionReason     string    `json:"rejection_reason,omitempty"`
}
