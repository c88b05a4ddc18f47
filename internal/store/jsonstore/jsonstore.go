package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/idilsaglam/moneywise/internal/model"
	"github.com/idilsaglam/moneywise/internal/store"
)

// JSON-backed storage. Single file, human-readable, portable.
// Writes go through a temp file and a rename, after checking the file still
// hashes to the version the caller loaded. The check and the rename run
// under an exclusive lock on path+".lock", shared by every process.

const lockRetry = 5 * time.Millisecond

// Store keeps the ledger in one file.
type Store struct {
	path string
}

// New returns a store for the file at path. The file need not exist.
func New(path string) *Store { return &Store{path: path} }

// Path is the backing file.
func (s *Store) Path() string { return s.path }

// lock takes the writer lock, waiting until ctx is done.
func (s *Store) lock(ctx context.Context) (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	fl := flock.New(s.path + ".lock")
	if _, err := fl.TryLockContext(ctx, lockRetry); err != nil {
		return nil, fmt.Errorf("lock %s: %w", fl.Path(), err)
	}
	return fl, nil
}

func (s *Store) read() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

func (s *Store) Load(ctx context.Context) ([]model.Expense, store.Version, error) {
	b, err := s.read()
	if err != nil {
		return nil, "", err
	}
	v := store.VersionOf(b)
	if b == nil {
		return []model.Expense{}, v, nil
	}
	var items []model.Expense
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, v, fmt.Errorf("%w: json unmarshal: %v", store.ErrCorrupt, err)
	}
	if items == nil {
		// "null" is what a cleared list looks like in some writers
		items = []model.Expense{}
	}
	return items, v, nil
}

func (s *Store) Save(ctx context.Context, items []model.Expense, expect store.Version) error {
	fl, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer fl.Unlock()

	cur, err := s.read()
	if err != nil {
		return err
	}
	if store.VersionOf(cur) != expect {
		return store.ErrConflict
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".expenses-*.json")
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context) error {
	fl, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer fl.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}
