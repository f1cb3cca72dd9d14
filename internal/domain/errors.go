// internal/domain/errors.go
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"balance-ledger/internal/util"
)

// InsufficientBalanceError is returned when a withdrawal exceeds the user's
// current balance. It carries the balance at the time of the check so the
// client can display it.
type InsufficientBalanceError struct {
	Current decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: current balance %s", e.Current.StringFixed(2))
}

// Is makes the error match util.ErrInsufficientBalance under errors.Is.
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == util.ErrInsufficientBalance
}
