// Package ledger is the expense tracker: an append-only list of expenses
// with a running total, persisted through a store.Store.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/idilsaglam/moneywise/internal/model"
	"github.com/idilsaglam/moneywise/internal/store"
)

// ErrInvalidExpense rejects an entry without a description or amount.
var ErrInvalidExpense = errors.New("ledger: description and a non-zero amount are required")

// maxAttempts bounds the compare-and-swap retries of one Add.
const maxAttempts = 5

// View is what the tracker renders.
type View struct {
	Entries []model.Expense
	Total   decimal.Decimal
}

// Ledger reads and writes the expense list.
type Ledger struct {
	store store.Store
	log   zerolog.Logger
}

// New returns a ledger over s.
func New(s store.Store, log zerolog.Logger) *Ledger {
	return &Ledger{store: s, log: log.With().Str("component", "ledger").Logger()}
}

// load reads the list, treating a corrupt value as empty.
func (l *Ledger) load(ctx context.Context) ([]model.Expense, store.Version, error) {
	items, v, err := l.store.Load(ctx)
	if errors.Is(err, store.ErrCorrupt) {
		l.log.Warn().Err(err).Msg("ignoring corrupt ledger")
		return []model.Expense{}, v, nil
	}
	return items, v, err
}

// Load returns every entry in insertion order and their total.
func (l *Ledger) Load(ctx context.Context) (View, error) {
	items, _, err := l.load(ctx)
	if err != nil {
		return View{}, fmt.Errorf("load ledger: %w", err)
	}
	return View{Entries: items, Total: model.Total(items)}, nil
}

// Add appends one expense. desc is trimmed; it and amount must be present.
func (l *Ledger) Add(ctx context.Context, desc string, amount decimal.Decimal) (View, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" || amount.IsZero() {
		return View{}, ErrInvalidExpense
	}
	e := model.Expense{Desc: desc, Amount: amount}
	for attempt := 1; ; attempt++ {
		items, v, err := l.load(ctx)
		if err != nil {
			return View{}, fmt.Errorf("load ledger: %w", err)
		}
		items = append(items, e)
		err = l.store.Save(ctx, items, v)
		if err == nil {
			l.log.Debug().Str("desc", desc).Str("amount", amount.String()).Msg("expense added")
			return View{Entries: items, Total: model.Total(items)}, nil
		}
		if !errors.Is(err, store.ErrConflict) || attempt == maxAttempts {
			return View{}, fmt.Errorf("save ledger: %w", err)
		}
		l.log.Info().Int("attempt", attempt).Msg("ledger changed underneath, retrying")
	}
}

// ParseAmount reads an amount field; blank or unparsable text is zero.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Clear deletes every entry once confirm agrees. It reports whether it did.
func (l *Ledger) Clear(ctx context.Context, confirm func() bool) (bool, error) {
	if confirm == nil || !confirm() {
		return false, nil
	}
	if err := l.store.Delete(ctx); err != nil {
		return false, fmt.Errorf("clear ledger: %w", err)
	}
	l.log.Debug().Msg("ledger cleared")
	return true, nil
}
