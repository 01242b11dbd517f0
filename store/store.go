// Package store provides the key-value substrates the ledger is persisted to.
//
// A Store holds whole values under string keys: the ledger writes a full
// snapshot on every change, so no partial update is ever needed.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("key not found")

// Store is a minimal key-value store.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Kinds of store known to Open.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindRedis  = "redis"
	KindMemory = "memory"
)

// Options selects and configures a Store.
type Options struct {
	Kind        string // one of the Kind constants
	Path        string // directory for file, database file for sqlite
	RedisAddr   string
	RedisDB     int
	RedisPrefix string // prepended to every key
}

// Open returns the Store described by o.
func Open(ctx context.Context, o Options) (Store, error) {
	switch o.Kind {
	case KindFile, "":
		return NewFile(o.Path)
	case KindSQLite:
		return NewSQLite(o.Path)
	case KindRedis:
		return NewRedis(ctx, o.RedisAddr, o.RedisDB, o.RedisPrefix)
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", o.Kind)
	}
}

// Copy copies the values of keys from src to dst, and returns the number of
// keys copied. Keys missing in src are deleted from dst.
func Copy(ctx context.Context, dst, src Store, keys ...string) (int, error) {
	n := 0
	for _, key := range keys {
		value, err := src.Get(ctx, key)
		if errors.Is(err, ErrNotFound) {
			if err := dst.Delete(ctx, key); err != nil {
				return n, fmt.Errorf("could not delete %q: %w", key, err)
			}
			continue
		}
		if err != nil {
			return n, fmt.Errorf("could not read %q: %w", key, err)
		}
		if err := dst.Put(ctx, key, value); err != nil {
			return n, fmt.Errorf("could not write %q: %w", key, err)
		}
		n++
	}
	return n, nil
}
