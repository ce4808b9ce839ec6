package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecorded is emitted once per ledger transaction.
// Amount is unsigned, Delta is its signed effect (negative for a
// withdrawal) and Balance is the account balance right after it.
type TransactionRecorded struct {
	EventID       string          `json:"event_id"`
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Delta         decimal.Decimal `json:"delta"`
	Balance       decimal.Decimal `json:"balance"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
