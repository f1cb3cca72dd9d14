// internal/domain/user.go
package domain

// User represents an account holder in the balance ledger.
// Balance is stored in integer minor units (cents) and must never go
// negative; every committed operation preserves Balance >= 0.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"` // Unique, immutable after creation
	Balance  int64  `db:"balance" json:"balance"`   // Cents, BIGINT in DB, CHECK (balance >= 0)
}

// NewUser creates a new User instance with a zero balance.
func NewUser(username string) *User {
	return &User{
		Username: username,
	}
}
