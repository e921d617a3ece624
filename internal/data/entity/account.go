package entity

import "github.com/google/uuid"

type AccountStatus string

const (
	AccountStatusPending   AccountStatus = "PENDING"
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

type AccountType string

const (
	AccountTypeCustomer AccountType = "CUSTOMER"
)

const GroupCustomer = "customer"

type Account struct {
	Base
	Status       AccountStatus `db:"status"`
	Type         AccountType   `db:"type"`
	Groups       []string      `db:"groups"`
	PasswordHash string        `db:"password_hash"`
}

// IsActive reports whether the account may sign in or own sessions.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

type Profile struct {
	BaseNoDelete
	AccountID uuid.UUID `db:"account_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	FullName  string    `db:"full_name"`
}
