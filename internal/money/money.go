// Package money holds the two quantities the ledger works with.
//
// Amount is what a single deposit or withdrawal moves and can never be
// negative: it is backed by an unsigned integer. Balance is the running total
// of an account and may go below zero. Both count minor currency units.
package money

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Errors returned by arithmetic and parsing.
var (
	ErrOverflow        = errors.New("money: result out of balance range")
	ErrNotWholeUnits   = errors.New("money: value must be a whole number of minor units")
	ErrNegativeAmount  = errors.New("money: amount cannot be negative")
	ErrMalformedNumber = errors.New("money: malformed number")
)

// Amount is a non-negative quantity moved by one transaction.
type Amount uint64

// Balance is a signed running total.
type Balance int64

// NewAmount wraps v minor units. The unsigned type makes a negative
// amount unrepresentable.
func NewAmount(v uint64) Amount { return Amount(v) }

// NewBalance wraps v minor units; any value is accepted.
func NewBalance(v int64) Balance { return Balance(v) }

// IsNegative reports whether b is below zero.
func (b Balance) IsNegative() bool { return b < 0 }

// Int64 returns the raw number of minor units.
func (b Balance) Int64() int64 { return int64(b) }

// Uint64 returns the raw number of minor units.
func (a Amount) Uint64() uint64 { return uint64(a) }

// signed widens a into the balance domain. Amounts above math.MaxInt64 have
// no Balance representation.
func (a Amount) signed() (int64, error) {
	if uint64(a) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: amount %d", ErrOverflow, uint64(a))
	}
	return int64(a), nil
}

// Add returns b + a.
func (b Balance) Add(a Amount) (Balance, error) {
	v, err := a.signed()
	if err != nil {
		return b, err
	}
	if int64(b) > math.MaxInt64-v {
		return b, fmt.Errorf("%w: %d + %d", ErrOverflow, int64(b), v)
	}
	return b + Balance(v), nil
}

// Sub returns b - a.
func (b Balance) Sub(a Amount) (Balance, error) {
	v, err := a.signed()
	if err != nil {
		return b, err
	}
	if int64(b) < math.MinInt64+v {
		return b, fmt.Errorf("%w: %d - %d", ErrOverflow, int64(b), v)
	}
	return b - Balance(v), nil
}

// AddTo returns b + a, the same value as b.Add(a).
func (a Amount) AddTo(b Balance) (Balance, error) {
	return b.Add(a)
}

func (b Balance) String() string { return strconv.FormatInt(int64(b), 10) }

func (a Amount) String() string { return strconv.FormatUint(uint64(a), 10) }

// Format right-aligns the value in the field width given by the verb, so
// fmt.Sprintf("%7v", b) pads on the left. The '-' flag left-aligns.
func (b Balance) Format(f fmt.State, verb rune) {
	formatUnits(f, verb, "Balance", b.String())
}

// Format behaves like Balance.Format.
func (a Amount) Format(f fmt.State, verb rune) {
	formatUnits(f, verb, "Amount", a.String())
}

func formatUnits(f fmt.State, verb rune, kind, digits string) {
	switch verb {
	case 'v', 'd', 's':
	default:
		fmt.Fprintf(f, "%%!%c(money.%s=%s)", verb, kind, digits)
		return
	}
	width, _ := f.Width()
	if f.Flag('-') {
		fmt.Fprintf(f, "%-*s", width, digits)
		return
	}
	fmt.Fprintf(f, "%*s", width, digits)
}

// Decimal returns the balance as a decimal number of minor units.
func (b Balance) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(b))
}

// Decimal returns the amount as a decimal number of minor units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(a)), 0)
}

// ParseAmount reads a whole, non-negative number of minor units.
func ParseAmount(s string) (Amount, error) {
	d, err := parseWhole(s)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q", ErrNegativeAmount, s)
	}
	n := d.BigInt()
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return Amount(n.Uint64()), nil
}

// ParseBalance reads a whole, possibly negative number of minor units.
func ParseBalance(s string) (Balance, error) {
	d, err := parseWhole(s)
	if err != nil {
		return 0, err
	}
	n := d.BigInt()
	if !n.IsInt64() {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return Balance(n.Int64()), nil
}

func parseWhole(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	if !d.IsInteger() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotWholeUnits, s)
	}
	return d, nil
}
