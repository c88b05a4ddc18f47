// Package redisstore keeps the ledger under one redis key.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/idilsaglam/moneywise/internal/model"
	"github.com/idilsaglam/moneywise/internal/store"
)

type Store struct {
	client *redis.Client
	key    string
}

// New connects lazily to addr; the first command dials.
func New(addr, password string, db int, key string) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, key)
}

// NewFromClient wraps an existing client.
func NewFromClient(client *redis.Client, key string) *Store {
	return &Store{client: client, key: key}
}

// Close releases the client.
func (s *Store) Close() error { return s.client.Close() }

// getter is the part of a client or a transaction that reads a key.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func get(ctx context.Context, c getter, key string) ([]byte, error) {
	b, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, nil
}

func (s *Store) Load(ctx context.Context) ([]model.Expense, store.Version, error) {
	b, err := get(ctx, s.client, s.key)
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
		items = []model.Expense{}
	}
	return items, v, nil
}

// Save is a WATCH/MULTI compare-and-swap on the key.
func (s *Store) Save(ctx context.Context, items []model.Expense, expect store.Version) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := get(ctx, tx, s.key)
		if err != nil {
			return err
		}
		if store.VersionOf(cur) != expect {
			return store.ErrConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, b, 0)
			return nil
		})
		return err
	}, s.key)
	if errors.Is(err, redis.TxFailedErr) {
		return store.ErrConflict
	}
	return err
}

func (s *Store) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", s.key, err)
	}
	return nil
}
