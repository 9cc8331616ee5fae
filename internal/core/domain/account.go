package domain

import "time"

// AccountStatus is the lifecycle state of a stored account.
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
)

// Account is the persisted portal user. Role and Roles mirror the two storage
// shapes found in the accounts collection: older records carry a single role
// string, newer ones a roles array.
type Account struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Name      string        `json:"name,omitempty"`
	Role      string        `json:"role,omitempty"`
	Roles     []string      `json:"roles,omitempty"`
	Status    AccountStatus `json:"status,omitempty"`
	Deleted   bool          `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Suspended reports whether the account has been deactivated without being deleted.
func (a *Account) Suspended() bool {
	return a.Status == AccountSuspended
}
