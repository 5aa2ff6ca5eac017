package gormsnap

import (
	"time"

	"ruralbank/internal/domain/account"
	"ruralbank/internal/domain/identity"
	"ruralbank/internal/domain/ledger"
	"ruralbank/internal/domain/loan"
)

// Persist models are kept separate from the domain types so the schema can
// carry DB-only concerns (the Seq column preserves insertion order across a
// round trip). Plain text columns keep the schema sqlite-safe.

type metaRow struct {
	ID      uint64    `gorm:"primaryKey;column:id"`
	Format  string    `gorm:"size:64;column:format"`
	Version int       `gorm:"column:version"`
	SavedAt time.Time `gorm:"column:saved_at"`
}

func (metaRow) TableName() string { return "snapshot_meta" }

type userRow struct {
	Seq         uint64 `gorm:"primaryKey;autoIncrement;column:seq"`
	UserID      string `gorm:"size:64;uniqueIndex;column:user_id"`
	Username    string `gorm:"size:64;column:username"`
	Secret      string `gorm:"size:64;column:secret"`
	Role        string `gorm:"size:32;column:role"`
	DisplayName string `gorm:"size:128;column:display_name"`
}

func (userRow) TableName() string { return "identities" }

type accountRow struct {
	Seq             uint64    `gorm:"primaryKey;autoIncrement;column:seq"`
	AccountID       string    `gorm:"size:64;uniqueIndex;column:account_id"`
	CustomerID      string    `gorm:"size:64;index;column:customer_id"`
	CustomerName    string    `gorm:"size:128;column:customer_name"`
	DateOfBirth     string    `gorm:"size:32;column:date_of_birth"`
	Address         string    `gorm:"type:text;column:address"`
	IDType          string    `gorm:"size:64;column:id_type"`
	IDNumber        string    `gorm:"size:64;column:id_number"`
	Balance         float64   `gorm:"column:balance"`
	Status          string    `gorm:"size:16;column:status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	ApprovedBy      string    `gorm:"size:64;column:approved_by"`
	RejectedBy      string    `gorm:"size:64;column:rejected_by"`
	RejectionReason string    `gorm:"type:text;column:rejection_reason"`
}

func (accountRow) TableName() string { return "accounts" }

type transactionRow struct {
	Seq              uint64    `gorm:"primaryKey;autoIncrement;column:seq"`
	TransactionID    string    `gorm:"size:64;uniqueIndex;column:transaction_id"`
	AccountID        string    `gorm:"size:64;index;column:account_id"`
	Type             string    `gorm:"size:32;column:type"`
	Amount           float64   `gorm:"column:amount"`
	BalanceAfter     float64   `gorm:"column:balance_after"`
	Description      string    `gorm:"type:text;column:description"`
	RelatedAccountID string    `gorm:"size:64;column:related_account_id"`
	ProcessedBy      string    `gorm:"size:64;column:processed_by"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (transactionRow) TableName() string { return "transactions" }

type loanRow struct {
	Seq                 uint64    `gorm:"primaryKey;autoIncrement;column:seq"`
	LoanID              string    `gorm:"size:64;uniqueIndex;column:loan_id"`
	AccountID           string    `gorm:"size:64;index;column:account_id"`
	CustomerName        string    `gorm:"size:128;column:customer_name"`
	Amount              float64   `gorm:"column:amount"`
	InterestRate        float64   `gorm:"column:interest_rate"`
	TermYears           int       `gorm:"column:term_years"`
	TotalPayable        float64   `gorm:"column:total_payable"`
	MonthlyAmortization float64   `gorm:"column:monthly_amortization"`
	Status              string    `gorm:"size:16;column:status"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	ApprovedBy          string    `gorm:"size:64;column:approved_by"`
	RejectedBy          string    `gorm:"size:64;column:rejected_by"`
	RejectionReason     string    `gorm:"type:text;column:rejection_reason"`
}

func (loanRow) TableName() string { return "loans" }

func toUserRow(u identity.User) userRow {
	return userRow{UserID: u.ID, Username: u.Username, Secret: u.Secret, Role: string(u.Role), DisplayName: u.DisplayName}
}

func (r userRow) domain() identity.User {
	return identity.User{ID: r.UserID, Username: r.Username, Secret: r.Secret, Role: identity.Role(r.Role), DisplayName: r.DisplayName}
}

func toAccountRow(a account.Account) accountRow {
	return accountRow{
		AccountID: a.ID, CustomerID: a.CustomerID, CustomerName: a.CustomerName,
		DateOfBirth: a.DateOfBirth, Address: a.Address, IDType: a.IDType, IDNumber: a.IDNumber,
		Balance: a.Balance, Status: string(a.Status), CreatedAt: a.CreatedAt,
		ApprovedBy: a.ApprovedBy, RejectedBy: a.RejectedBy, RejectionReason: a.RejectionReason,
	}
}

func (r accountRow) domain() account.Account {
	return account.Account{
		ID: r.AccountID, CustomerID: r.CustomerID, CustomerName: r.CustomerName,
		DateOfBirth: r.DateOfBirth, Address: r.Address, IDType: r.IDType, IDNumber: r.IDNumber,
		Balance: r.Balance, Status: account.Status(r.Status), CreatedAt: r.CreatedAt,
		ApprovedBy: r.ApprovedBy, RejectedBy: r.RejectedBy, RejectionReason: r.RejectionReason,
	}
}

func toTransactionRow(t ledger.Transaction) transactionRow {
	return transactionRow{
		TransactionID: t.ID, AccountID: t.AccountID, Type: string(t.Type),
		Amount: t.Amount, BalanceAfter: t.BalanceAfter, Description: t.Description,
		RelatedAccountID: t.RelatedAccountID, ProcessedBy: t.ProcessedBy, CreatedAt: t.CreatedAt,
	}
}

func (r transactionRow) domain() ledger.Transaction {
	return ledger.Transaction{
		ID: r.TransactionID, AccountID: r.AccountID, Type: ledger.Type(r.Type),
		Amount: r.Amount, BalanceAfter: r.BalanceAfter, Description: r.Description,
		RelatedAccountID: r.RelatedAccountID, ProcessedBy: r.ProcessedBy, CreatedAt: r.CreatedAt,
	}
}

func toLoanRow(l loan.Loan) loanRow {
	return loanRow{
		LoanID: l.ID, AccountID: l.AccountID, CustomerName: l.CustomerName,
		Amount: l.Amount, InterestRate: l.InterestRate, TermYears: l.TermYears,
		TotalPayable: l.TotalPayable, MonthlyAmortization: l.MonthlyAmortization,
		Status: string(l.Status), CreatedAt: l.CreatedAt,
		ApprovedBy: l.ApprovedBy, RejectedBy: l.RejectedBy, RejectionReason: l.RejectionReason,
	}
}

func (r loanRow) domain() loan.Loan {
	return loan.Loan{
		ID: r.LoanID, AccountID: r.AccountID, CustomerName: r.CustomerName,
		Amount: r.Amount, InterestRate: r.InterestRate, TermYears: r.TermYears,
		TotalPayable: r.TotalPayable, MonthlyAmortization: r.MonthlyAmortization,
		Status: loan.Status(r.Status), CreatedAt: r.CreatedAt,
		ApprovedBy: r.ApprovedBy, RejectedBy: r.RejectedBy, RejectionReason: r.RejectionReason,
	}
}
