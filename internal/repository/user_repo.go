// internal/repository/user_repo.go
package repository

import (
	"context"

	"balance-ledger/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Create adds a new user using the provided DBExecutor.
	Create(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetByID retrieves a user by ID using the provided DBExecutor.
	GetByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetByIDForUpdate retrieves a user by ID and takes a row-level lock.
	// Only meaningful when q is an open transaction; the lock is held until
	// that transaction commits or rolls back.
	GetByIDForUpdate(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetByUsername retrieves a user by username using the provided DBExecutor.
	GetByUsername(ctx context.Context, q DBExecutor, username string) (*domain.User, error)
	// UpdateBalance sets the user's balance to the given number of cents.
	UpdateBalance(ctx context.Context, q DBExecutor, id int64, balance int64) error
	// DeleteAll removes every user. Used by the seeding tool.
	DeleteAll(ctx context.Context, q DBExecutor) error
}
