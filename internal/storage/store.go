// Package storage provides durable string key-value stores for game
// statistics and saved games.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Store is a string key-value store. Implementations are safe for
// concurrent use.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Backend   string
	Path      string // SQLite database file
	RedisAddr string
}

// Open creates the store described by cfg. An empty backend means SQLite.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendSQLite:
		return OpenSQLite(ctx, cfg.Path)
	case BackendRedis:
		return OpenRedis(ctx, cfg.RedisAddr)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
