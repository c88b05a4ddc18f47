package ledger

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/idilsaglam/moneywise/internal/inr"
	"github.com/idilsaglam/moneywise/internal/model"
	"github.com/idilsaglam/moneywise/internal/store"
	"github.com/idilsaglam/moneywise/internal/store/jsonstore"
)

func newLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "expenses.json")
	return New(jsonstore.New(p), zerolog.Nop()), p
}

func yes() bool { return true }
func no() bool  { return false }

func TestAddTotal(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t)
	if _, err := l.Add(ctx, "Coffee", decimal.NewFromInt(150)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Add(ctx, "Book", decimal.NewFromInt(450)); err != nil {
		t.Fatal(err)
	}
	v, err := l.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Entries) != 2 || v.Entries[0].Desc != "Coffee" || v.Entries[1].Desc != "Book" {
		t.Errorf("entries = %+v", v.Entries)
	}
	if got := inr.Total(v.Total); got != "₹600" {
		t.Errorf("total = %q, want ₹600", got)
	}
}

func TestTotalIsSum(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t)
	amounts := []string{"10", "0.5", "199.99", "1000", "42.01"}
	want := decimal.Zero
	for _, a := range amounts {
		d := decimal.RequireFromString(a)
		want = want.Add(d)
		if _, err := l.Add(ctx, "x", d); err != nil {
			t.Fatal(err)
		}
	}
	v, _ := l.Load(ctx)
	if !v.Total.Equal(want) {
		t.Errorf("total = %v, want %v", v.Total, want)
	}
}

func TestAddInvalid(t *testing.T) {
	ctx := context.Background()
	l, p := newLedger(t)
	tests := []struct {
		desc   string
		amount decimal.Decimal
	}{
		{"", decimal.NewFromInt(10)},
		{"   ", decimal.NewFromInt(10)},
		{"Coffee", decimal.Zero},
		{"Coffee", ParseAmount("abc")},
	}
	for _, tc := range tests {
		if _, err := l.Add(ctx, tc.desc, tc.amount); !errors.Is(err, ErrInvalidExpense) {
			t.Errorf("Add(%q, %v) error = %v", tc.desc, tc.amount, err)
		}
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Error("invalid adds should not persist anything")
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t)
	_, _ = l.Add(ctx, "Coffee", decimal.NewFromInt(150))

	cleared, err := l.Clear(ctx, no)
	if err != nil || cleared {
		t.Fatalf("declined Clear() = %v, %v", cleared, err)
	}
	if v, _ := l.Load(ctx); len(v.Entries) != 1 {
		t.Errorf("declined clear removed entries: %+v", v.Entries)
	}

	cleared, err = l.Clear(ctx, yes)
	if err != nil || !cleared {
		t.Fatalf("confirmed Clear() = %v, %v", cleared, err)
	}
	v, _ := l.Load(ctx)
	if len(v.Entries) != 0 || !v.Total.IsZero() {
		t.Errorf("after clear = %+v", v)
	}
}

func TestLoadCorruptIsEmpty(t *testing.T) {
	ctx := context.Background()
	l, p := newLedger(t)
	if err := os.WriteFile(p, []byte("[{"), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err := l.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(v.Entries) != 0 || !v.Total.IsZero() {
		t.Errorf("corrupt ledger = %+v", v)
	}
	if _, err := l.Add(ctx, "Tea", decimal.NewFromInt(20)); err != nil {
		t.Fatalf("Add() over corrupt ledger error = %v", err)
	}
	if v, _ := l.Load(ctx); len(v.Entries) != 1 {
		t.Errorf("entries = %+v", v.Entries)
	}
}

// racingStore lets another writer in before each of the first n saves.
type racingStore struct {
	store.Store
	races int
}

func (r *racingStore) Save(ctx context.Context, items []model.Expense, expect store.Version) error {
	if r.races > 0 {
		r.races--
		cur, v, _ := r.Store.Load(ctx)
		cur = append(cur, model.Expense{Desc: "other tab", Amount: decimal.NewFromInt(1)})
		if err := r.Store.Save(ctx, cur, v); err != nil {
			return err
		}
	}
	return r.Store.Save(ctx, items, expect)
}

func TestAddRetriesOnConflict(t *testing.T) {
	ctx := context.Background()
	rs := &racingStore{Store: jsonstore.New(filepath.Join(t.TempDir(), "e.json")), races: 2}
	l := New(rs, zerolog.Nop())
	v, err := l.Add(ctx, "mine", decimal.NewFromInt(5))
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	// both concurrent entries survive alongside ours
	if len(v.Entries) != 3 || v.Entries[2].Desc != "mine" {
		t.Errorf("entries = %+v", v.Entries)
	}
	if !v.Total.Equal(decimal.NewFromInt(7)) {
		t.Errorf("total = %v", v.Total)
	}
}

func TestAddGivesUp(t *testing.T) {
	rs := &racingStore{Store: jsonstore.New(filepath.Join(t.TempDir(), "e.json")), races: maxAttempts}
	l := New(rs, zerolog.Nop())
	if _, err := l.Add(context.Background(), "mine", decimal.NewFromInt(5)); !errors.Is(err, store.ErrConflict) {
		t.Errorf("Add() error = %v, want ErrConflict", err)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"150", "150"},
		{" 1,200.50 ", "1200.5"},
		{"", "0"},
		{"abc", "0"},
	}
	for _, tc := range tests {
		if got := ParseAmount(tc.in); !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("ParseAmount(%q) = %v, want %s", tc.in, got, tc.want)
		}
	}
}

func TestWritePDF(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t)
	_, _ = l.Add(ctx, "Coffee", decimal.NewFromInt(150))
	v, _ := l.Load(ctx)
	var buf bytes.Buffer
	if err := WritePDF(&buf, v, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("not a PDF: %q", buf.Bytes()[:8])
	}
}

func TestConcurrentAddsAreNotLost(t *testing.T) {
	ctx := context.Background()
	p := filepath.Join(t.TempDir(), "expenses.json")
	var acked atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := New(jsonstore.New(p), zerolog.Nop())
			for i := 0; i < 25; i++ {
				// Add may give up after its retries; it must never report a lost write
				if _, err := l.Add(ctx, "x", decimal.NewFromInt(1)); err == nil {
					acked.Add(1)
				} else if !errors.Is(err, store.ErrConflict) {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()
	v, err := New(jsonstore.New(p), zerolog.Nop()).Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if int64(len(v.Entries)) != acked.Load() {
		t.Errorf("%d adds acknowledged, %d persisted", acked.Load(), len(v.Entries))
	}
}
