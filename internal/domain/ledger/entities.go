package ledger

import (
	"errors"
	"time"
)

type Type string

const (
	TypeDeposit          Type = "deposit"
	TypeWithdrawal       Type = "withdrawal"
	TypeTransferOut      Type = "transfer_out"
	TypeTransferIn       Type = "transfer_in"
	TypeLoanDisbursement Type = "loan_disbursement"
)

var (
	ErrInvalidAmount     = errors.New("amount must be > 0")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSameAccount       = errors.New("source and destination accounts are the same")
)

// Transaction is one line of the audit trail. Records are append-only and
// immutable once created.
type Transaction struct {
	ID           string  `json:"id"`
	AccountID    string  `json:"account_id"`
	Type         Type    `json:"type"`
	Amount       float64 `json:"amount"`
	BalanceAfter float64 `json:"balance_after"`
	Description  string  `json:"description"`
	// RelatedAccountID cross-links the two legs of a transfer.
	RelatedAccountID string    `json:"related_account_id,omitempty"`
	ProcessedBy      string    `json:"processed_by"`
	CreatedAt        time.Time `json:"created_at"`
}
