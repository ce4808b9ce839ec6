package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sheikh-saqib/single-account-ledger/internal/models"
	"github.com/sheikh-saqib/single-account-ledger/internal/money"
)

// OverdraftPolicy decides whether a withdrawal may leave the balance below zero.
type OverdraftPolicy uint8

const (
	AllowOverdraft  OverdraftPolicy = iota // withdrawals may go below zero
	RejectOverdraft                        // withdrawals must leave the balance >= 0
)

func (p OverdraftPolicy) String() string {
	if p == RejectOverdraft {
		return "reject"
	}
	return "allow"
}

// ParseOverdraftPolicy accepts "allow" or "reject" in any case.
func ParseOverdraftPolicy(s string) (OverdraftPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "allow":
		return AllowOverdraft, nil
	case "reject":
		return RejectOverdraft, nil
	default:
		return AllowOverdraft, fmt.Errorf("%w: %q", ErrUnknownOverdraftPolicy, s)
	}
}

// DefaultDateLayout renders statement dates as YYYY/MM/DD.
const DefaultDateLayout = "2006/01/02"

// Account is a single-account ledger: an opening balance plus an
// append-only log of transactions. Every transaction stores the balance
// reached after it, so Balance never has to fold the log.
//
// Account has no internal locking. Callers sharing one across goroutines
// must serialize Deposit and Withdraw themselves.
type Account struct {
	id           string               // opaque account number
	opening      money.Balance        // balance before any transaction
	transactions []models.Transaction // append-only, oldest first

	now        func() time.Time // timestamps new transactions
	overdraft  OverdraftPolicy  // checked by Withdraw
	dateLayout string           // statement date column
	log        zerolog.Logger
}

// Option configures an Account at creation time.
type Option func(*Account)

// WithClock replaces the wall clock used to timestamp transactions.
func WithClock(now func() time.Time) Option {
	return func(a *Account) { a.now = now }
}

// WithOverdraftPolicy decides whether Withdraw may leave the balance
// negative. The default is AllowOverdraft.
func WithOverdraftPolicy(p OverdraftPolicy) Option {
	return func(a *Account) { a.overdraft = p }
}

// WithLogger attaches a logger; accounts are silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Account) { a.log = l }
}

// WithDateLayout sets the time layout of the statement's date column.
func WithDateLayout(layout string) Option {
	return func(a *Account) { a.dateLayout = layout }
}

// CreateNewAccount opens a ledger with no transactions. A negative opening
// balance is rejected with *NegativeOpeningBalanceError.
func CreateNewAccount(id string, opening money.Balance, opts ...Option) (*Account, error) {
	a := &Account{
		id:         id,
		opening:    opening,
		now:        func() time.Time { return time.Now().UTC() },
		dateLayout: DefaultDateLayout,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if opening.IsNegative() {
		a.log.Warn().Str("account_id", id).Int64("opening_balance", opening.Int64()).Msg("account creation rejected")
		return nil, &NegativeOpeningBalanceError{Balance: opening}
	}
	return a, nil
}

// ID returns the account number given at creation.
func (a *Account) ID() string { return a.id }

func (a *Account) OpeningBalance() money.Balance { return a.opening }

// OverdraftPolicy reports the policy Withdraw applies.
func (a *Account) OverdraftPolicy() OverdraftPolicy { return a.overdraft }

// Balance returns the balance after the latest transaction, or the opening
// balance when nothing has been recorded.
func (a *Account) Balance() money.Balance {
	if n := len(a.transactions); n > 0 {
		return a.transactions[n-1].Balance
	}
	return a.opening
}

// Len reports the number of recorded transactions.
func (a *Account) Len() int { return len(a.transactions) }

// Transactions returns a copy of the log in the order it was recorded.
func (a *Account) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit records a deposit of amount. It fails only when the new balance
// would not fit in a Balance, in which case nothing is recorded.
func (a *Account) Deposit(amount money.Amount) error {
	balance, err := a.Balance().Add(amount)
	if err != nil {
		a.log.Warn().Err(err).Str("account_id", a.id).Uint64("amount", amount.Uint64()).Msg("deposit rejected")
		return fmt.Errorf("deposit %v: %w", amount, err)
	}
	a.record(models.Deposit, amount, balance)
	return nil
}

// Withdraw records a withdrawal of amount. The resulting balance may be
// negative unless the account was opened with RejectOverdraft.
func (a *Account) Withdraw(amount money.Amount) error {
	current := a.Balance()
	balance, err := current.Sub(amount)
	if err != nil {
		a.log.Warn().Err(err).Str("account_id", a.id).Uint64("amount", amount.Uint64()).Msg("withdrawal rejected")
		return fmt.Errorf("withdraw %v: %w", amount, err)
	}
	if a.overdraft == RejectOverdraft && balance.IsNegative() {
		err := &OverdraftError{Balance: current, Amount: amount}
		a.log.Warn().Err(err).Str("account_id", a.id).Uint64("amount", amount.Uint64()).Msg("withdrawal rejected")
		return fmt.Errorf("withdraw %v: %w", amount, err)
	}
	a.record(models.Withdraw, amount, balance)
	return nil
}

// record appends a transaction stamped with the account clock.
func (a *Account) record(kind models.Kind, amount money.Amount, balance money.Balance) {
	tx := models.Transaction{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		Balance:   balance,
		CreatedAt: a.now(),
	}
	a.transactions = append(a.transactions, tx)

	a.log.Debug().
		Str("account_id", a.id).
		Str("transaction_id", tx.ID.String()).
		Stringer("kind", kind).
		Uint64("amount", amount.Uint64()).
		Int64("balance", balance.Int64()).
		Msg("transaction recorded")
}
