package identity

import "errors"

type Role string

const (
	RoleAdmin             Role = "admin"
	RoleTellerAccount     Role = "teller_account"
	RoleTellerTransaction Role = "teller_transaction"
	RoleTellerLoan        Role = "teller_loan"
	RoleCustomer          Role = "customer"
)

// DefaultCustomerSecret is assigned to customer identities created alongside a
// new account application. Credentials are never rotated in this system.
const DefaultCustomerSecret = "customer123"

var (
	ErrInvalidCredentials = errors.New("invalid username or secret")
	ErrDuplicateUsername  = errors.New("username already registered")
)

type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Secret      string `json:"secret"`
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
}

// Session is the role-bearing result of a successful authentication.
type Session struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
}

// SeedStaff is the fixed staff roster created when no snapshot exists yet.
// Demo credentials, not security.
func SeedStaff() []User {
	return []User{
		{ID: "usr-admin", Username: "admin", Secret: "admin123", Role: RoleAdmin, DisplayName: "Admin User"},
		{ID: "usr-teller1", Username: "teller1", Secret: "teller1", Role: RoleTellerAccount, DisplayName: "Account Teller"},
		{ID: "usr-teller2", Username: "teller2", Secret: "teller2", Role: RoleTellerTransaction, DisplayName: "Transaction Teller"},
		{ID: "usr-teller3", Username: "teller3", Secret: "teller3", Role: RoleTellerLoan, DisplayName: "Loan Teller"},
	}
}
