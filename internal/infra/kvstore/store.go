// Package kvstore persists small opaque values under fixed keys. Every write
// bumps a per-key version so callers can do optimistic read-modify-write.
package kvstore

import (
	"context"
	"fmt"
	"log/slog"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/pkg/config"
)

// Entry is a stored value and its version. Version 0 means the key was never written.
type Entry struct {
	Value   []byte
	Version int64
}

type Store interface {
	Get(ctx context.Context, key string) (Entry, error)
	// Set writes unconditionally and returns the new version.
	Set(ctx context.Context, key string, value []byte) (int64, error)
	// CompareAndSet writes only if the current version equals expected, otherwise
	// it fails with infra.KindVersionConflict.
	CompareAndSet(ctx context.Context, key string, expected int64, value []byte) (int64, error)
	Close() error
}

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open builds the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverFile:
		return NewFileStore(cfg.Dir, logger)
	case DriverSQLite:
		return NewSQLiteStore(ctx, cfg.Dir, logger)
	case DriverPostgres:
		return NewPostgresStore(ctx, cfg.DSN, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func conflictErr(logger *slog.Logger, key string, expected int64) error {
	return infra.WrapErr(logger, infra.KindVersionConflict,
		fmt.Sprintf("version of %q is no longer %d", key, expected), nil)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
