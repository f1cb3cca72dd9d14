// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrInvalidInput        = errors.New("invalid input provided")
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrDuplicateUser       = errors.New("user already exists")
)

// IsError checks whether err matches the given sentinel error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
