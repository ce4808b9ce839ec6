package money

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestBalanceArithmetic(t *testing.T) {
	b := NewBalance(2000)

	got, err := b.Add(NewAmount(100))
	if err != nil || got != 2100 {
		t.Fatalf("Add = %v, %v want 2100", got, err)
	}
	got, err = b.Sub(NewAmount(6000))
	if err != nil || got != -4000 {
		t.Fatalf("Sub = %v, %v want -4000", got, err)
	}
	if !got.IsNegative() {
		t.Fatalf("%v should be negative", got)
	}
	if NewBalance(0).IsNegative() {
		t.Fatal("zero reported negative")
	}
}

func TestAddIsCommutative(t *testing.T) {
	for _, tc := range []struct {
		b Balance
		a Amount
	}{
		{0, 0},
		{-900, 300},
		{5100, 6000},
		{math.MinInt64, math.MaxInt64},
	} {
		left, err1 := tc.b.Add(tc.a)
		right, err2 := tc.a.AddTo(tc.b)
		if err1 != nil || err2 != nil {
			t.Fatalf("%v + %v: %v / %v", tc.b, tc.a, err1, err2)
		}
		if left != right {
			t.Fatalf("%v + %v = %v but %v + %v = %v", tc.b, tc.a, left, tc.a, tc.b, right)
		}
	}
}

func TestArithmeticOverflow(t *testing.T) {
	cases := map[string]func() (Balance, error){
		"add past max":          func() (Balance, error) { return NewBalance(math.MaxInt64).Add(1) },
		"sub past min":          func() (Balance, error) { return NewBalance(math.MinInt64).Sub(1) },
		"amount wider than i64": func() (Balance, error) { return NewBalance(0).Add(math.MaxInt64 + 1) },
	}
	for name, op := range cases {
		if _, err := op(); !errors.Is(err, ErrOverflow) {
			t.Errorf("%s: err = %v, want ErrOverflow", name, err)
		}
	}
}

func TestFormatWidth(t *testing.T) {
	tests := []struct {
		format string
		arg    any
		want   string
	}{
		{"%v", NewBalance(-600), "-600"},
		{"%7v", NewBalance(-600), "   -600"},
		{"%9d", NewAmount(3000), "     3000"},
		{"%-6s|", NewAmount(50), "50    |"},
		{"%2v", NewBalance(12345), "12345"},
		{"%x", NewAmount(10), "%!x(money.Amount=10)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, tt.arg); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	if a, err := ParseAmount("3000"); err != nil || a != 3000 {
		t.Fatalf("ParseAmount(3000) = %v, %v", a, err)
	}
	if a, err := ParseAmount("18446744073709551615"); err != nil || a != math.MaxUint64 {
		t.Fatalf("ParseAmount(max) = %v, %v", a, err)
	}

	bad := map[string]error{
		"-1":                   ErrNegativeAmount,
		"1.5":                  ErrNotWholeUnits,
		"abc":                  ErrMalformedNumber,
		"18446744073709551616": ErrOverflow,
	}
	for in, want := range bad {
		if _, err := ParseAmount(in); !errors.Is(err, want) {
			t.Errorf("ParseAmount(%q) err = %v, want %v", in, err, want)
		}
	}
}

func TestParseBalance(t *testing.T) {
	if b, err := ParseBalance("-600"); err != nil || b != -600 {
		t.Fatalf("ParseBalance(-600) = %v, %v", b, err)
	}
	if _, err := ParseBalance("9223372036854775808"); !errors.Is(err, ErrOverflow) {
		t.Fatalf("err = %v, want ErrOverflow", err)
	}
	if _, err := ParseBalance("0.01"); !errors.Is(err, ErrNotWholeUnits) {
		t.Fatalf("err = %v, want ErrNotWholeUnits", err)
	}
}

func TestDecimal(t *testing.T) {
	if got := NewBalance(-900).Decimal().String(); got != "-900" {
		t.Fatalf("Balance.Decimal = %s", got)
	}
	if got := NewAmount(math.MaxUint64).Decimal().String(); got != "18446744073709551615" {
		t.Fatalf("Amount.Decimal = %s", got)
	}
}
