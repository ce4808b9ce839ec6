package models

import (
	"math"
	"testing"
)

func TestDelta(t *testing.T) {
	tests := []struct {
		tx   Transaction
		want string
	}{
		{Transaction{Kind: Deposit, Amount: 100}, "100"},
		{Transaction{Kind: Withdraw, Amount: 6000}, "-6000"},
		{Transaction{Kind: Withdraw, Amount: 0}, "0"},
		{Transaction{Kind: Withdraw, Amount: math.MaxUint64}, "-18446744073709551615"},
	}
	for _, tt := range tests {
		if got := tt.tx.Delta().String(); got != tt.want {
			t.Errorf("%s %v: Delta = %s, want %s", tt.tx.Kind, tt.tx.Amount, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if Deposit.String() != "deposit" || Withdraw.String() != "withdraw" || Kind(0).String() != "unknown" {
		t.Fatalf("unexpected kind names: %s %s %s", Deposit, Withdraw, Kind(0))
	}
}
