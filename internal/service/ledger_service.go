// internal/service/ledger_service.go
package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"balance-ledger/internal/domain"
	"balance-ledger/internal/money"
	"balance-ledger/internal/repository"
	"balance-ledger/internal/util"
	"balance-ledger/pkg/db"
)

// LedgerService defines the interface for balance ledger business logic.
type LedgerService interface {
	// Deposit adds amount to the user's balance and returns the updated user.
	Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error)
	// Withdraw subtracts amount from the user's balance and returns the
	// updated user. Fails with domain.InsufficientBalanceError when the
	// balance does not cover the amount.
	Withdraw(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error)
}

// ledgerService implements the LedgerService interface.
type ledgerService struct {
	dbBeginner db.TxBeginner
	users      repository.UserRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewLedgerService creates a new instance of LedgerService. The transaction
// lifecycle functions are injected so tests can control commit and rollback.
func NewLedgerService(
	dbBeginner db.TxBeginner,
	users repository.UserRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) LedgerService {
	return &ledgerService{
		dbBeginner: dbBeginner,
		users:      users,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// toCents validates an amount and converts it to cents before any storage
// access. Amounts that are not strictly positive, or that round to zero
// cents, are rejected.
func toCents(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, util.ErrInvalidInput
	}
	cents := money.ToCents(amount)
	if cents <= 0 {
		return 0, util.ErrInvalidInput
	}
	return cents, nil
}

func (s *ledgerService) Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error) {
	cents, err := toCents(amount)
	if err != nil {
		return nil, err
	}

	tx, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("deposit: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(tx)

	q, ok := tx.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("deposit: transaction controller does not implement DBExecutor")
	}

	user, err := s.users.GetByIDForUpdate(ctx, q, userID)
	if err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("deposit: failed to load user %d: %w", userID, err)
	}

	user.Balance += cents
	if err := s.users.UpdateBalance(ctx, q, user.ID, user.Balance); err != nil {
		return nil, fmt.Errorf("deposit: failed to update balance: %w", err)
	}

	if err := s.commitTx(tx); err != nil {
		return nil, fmt.Errorf("deposit: failed to commit transaction: %w", err)
	}

	return user, nil
}

func (s *ledgerService) Withdraw(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error) {
	cents, err := toCents(amount)
	if err != nil {
		return nil, err
	}

	tx, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("withdraw: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(tx)

	q, ok := tx.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("withdraw: transaction controller does not implement DBExecutor")
	}

	user, err := s.users.GetByIDForUpdate(ctx, q, userID)
	if err != nil {
		if util.IsError(err, util.ErrUserNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("withdraw: failed to load user %d: %w", userID, err)
	}

	if user.Balance < cents {
		return nil, &domain.InsufficientBalanceError{Current: money.FromCents(user.Balance)}
	}

	user.Balance -= cents
	if err := s.users.UpdateBalance(ctx, q, user.ID, user.Balance); err != nil {
		return nil, fmt.Errorf("withdraw: failed to update balance: %w", err)
	}

	if err := s.commitTx(tx); err != nil {
		return nil, fmt.Errorf("withdraw: failed to commit transaction: %w", err)
	}

	return user, nil
}
