// Package store defines the contract shared by the ledger backends.
//
// Every backend persists the ledger as one JSON array and guards writes
// with a version taken from the bytes last read, so two writers racing on
// the same ledger get ErrConflict instead of overwriting each other.
package store

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"

	"github.com/idilsaglam/moneywise/internal/model"
)

var (
	// ErrConflict means the persisted ledger changed since it was loaded.
	ErrConflict = errors.New("store: ledger changed concurrently")
	// ErrCorrupt means the persisted value is not a JSON expense list.
	ErrCorrupt = errors.New("store: corrupt ledger")
)

// Version identifies one persisted state. The zero value means "absent".
type Version string

// VersionOf hashes persisted bytes; nil means absent.
func VersionOf(b []byte) Version {
	if b == nil {
		return ""
	}
	sum := sha1.Sum(b)
	return Version(hex.EncodeToString(sum[:]))
}

// Store persists the expense list.
type Store interface {
	// Load returns the entries and the version they were read at. A corrupt
	// value returns ErrCorrupt along with its version, so it can be replaced.
	Load(ctx context.Context) ([]model.Expense, Version, error)
	// Save writes entries if the persisted version still equals expect.
	Save(ctx context.Context, entries []model.Expense, expect Version) error
	// Delete removes the ledger. Deleting an absent ledger is not an error.
	Delete(ctx context.Context) error
}
