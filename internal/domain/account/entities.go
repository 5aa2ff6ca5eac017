package account

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
	ErrNotFound = errors.New("account not found")
	// ErrValidation covers missing/blank required profile fields and blank
	// rejection reasons.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidTransition is returned when approving or rejecting a record
	// that is no longer pending. Both terminal states are final.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrNotActive guards every money-movement operation: only approved
	// accounts hold a balance.
	ErrNotActive = errors.New("account is not active")
)

type Account struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	DateOfBirth     string    `json:"date_of_birth"`
	Address         string    `json:"address"`
	IDType          string    `json:"id_type"`
	IDNumber        string    `json:"id_number"`
	Balance         float64   `json:"balance"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	ApprovedBy      string    `json:"approved_by,omitempty"`
	RejectedBy      string    `json:"rejected_by,omitempty"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
}
