package inr

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRounded(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{600, "₹600"},
		{1161695.39, "₹1,161,695"},
		{10606.6, "₹10,607"},
	}
	for _, tc := range tests {
		if got := Rounded(tc.in); got != tc.want {
			t.Errorf("Rounded(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"600", "₹600"},
		{"150000", "₹150,000"},
		{"12.5", "₹12.50"},
	}
	for _, tc := range tests {
		if got := Total(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Errorf("Total(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAmount(t *testing.T) {
	if got := Amount(decimal.RequireFromString("150.5")); got != "₹150.5" {
		t.Errorf("Amount() = %q", got)
	}
}
