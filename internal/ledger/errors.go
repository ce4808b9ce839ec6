package ledger

import (
	"errors"
	"fmt"

	"github.com/sheikh-saqib/single-account-ledger/internal/money"
)

var (
	ErrNegativeOpeningBalance = errors.New("opening balance cannot be negative")
	ErrOverdraft              = errors.New("withdrawal would overdraw the account")
	ErrUnknownOverdraftPolicy = errors.New("unknown overdraft policy")
)

// NegativeOpeningBalanceError carries the rejected opening balance.
type NegativeOpeningBalanceError struct {
	Balance money.Balance
}

func (e *NegativeOpeningBalanceError) Error() string {
	return fmt.Sprintf("%s: %v", ErrNegativeOpeningBalance, e.Balance)
}

func (e *NegativeOpeningBalanceError) Unwrap() error { return ErrNegativeOpeningBalance }

// OverdraftError is returned by Withdraw under RejectOverdraft.
type OverdraftError struct {
	Balance money.Balance
	Amount  money.Amount
}

func (e *OverdraftError) Error() string {
	return fmt.Sprintf("%s: balance %v, withdrawal %v", ErrOverdraft, e.Balance, e.Amount)
}

func (e *OverdraftError) Unwrap() error { return ErrOverdraft }
