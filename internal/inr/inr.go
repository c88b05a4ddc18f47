// Package inr formats rupee amounts for display.
package inr

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func currency() *money.Currency {
	// to get a never nil currency go through the Money constructor
	return money.New(0, money.INR).Currency()
}

func format(minor int64, fraction int) string {
	c := currency()
	return money.NewFormatter(fraction, c.Decimal, c.Thousand, c.Grapheme, c.Template).Format(minor)
}

// Rounded formats v rounded to the whole rupee, e.g. "₹1,161,695".
func Rounded(v float64) string {
	return format(int64(math.Round(v)), 0)
}

// Total formats a ledger total: whole rupees when integral, paise otherwise.
func Total(d decimal.Decimal) string {
	if d.IsInteger() {
		return format(d.IntPart(), 0)
	}
	return format(d.Round(2).Shift(2).IntPart(), 2)
}

// Amount formats a single entry as entered, e.g. "₹150.5".
func Amount(d decimal.Decimal) string {
	return currency().Grapheme + d.String()
}
