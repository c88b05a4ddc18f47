package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Expense is one ledger entry.
// Persisted as {"desc": "...", "amount": 150}.
type Expense struct {
	Desc   string          `json:"desc"`
	Amount decimal.Decimal `json:"amount"`
}

// MarshalJSON writes the amount as a bare JSON number; decimal quotes it by default.
func (e Expense) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Desc   string      `json:"desc"`
		Amount json.Number `json:"amount"`
	}{e.Desc, json.Number(e.Amount.String())})
}

// Total sums the amounts of all entries.
func Total(entries []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
