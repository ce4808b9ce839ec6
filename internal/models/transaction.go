package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sheikh-saqib/single-account-ledger/internal/money"
	"github.com/shopspring/decimal"
)

// Kind tags a Transaction as a deposit or a withdrawal.
type Kind uint8

const (
	Deposit Kind = iota + 1
	Withdraw
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdraw:
		return "withdraw"
	default:
		return "unknown"
	}
}

// Transaction is one recorded movement on an account.
// Balance is the account balance right after it was applied and is fixed
// when the transaction is recorded.
type Transaction struct {
	ID        uuid.UUID     // unique identifier
	Kind      Kind          // deposit or withdraw
	Amount    money.Amount  // magnitude moved, never negative
	Balance   money.Balance // resulting balance
	CreatedAt time.Time     // timestamp
}

// Delta returns the signed effect of t on the balance: positive for a
// deposit, negative for a withdrawal.
func (t Transaction) Delta() decimal.Decimal {
	if t.Kind == Withdraw {
		return t.Amount.Decimal().Neg()
	}
	return t.Amount.Decimal()
}
