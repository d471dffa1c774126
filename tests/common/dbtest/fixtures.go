//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Entry is a raw kv_entries row.
type Entry struct {
	Value   []byte
	Version int64
}

// ReadEntry returns the stored row for key; ok is false when the key was never written.
func ReadEntry(t *testing.T, db DBLike, key string) (Entry, bool) {
	t.Helper()

	var e Entry
	err := db.QueryRow(context.Background(),
		"SELECT value, version FROM kv_entries WHERE entry_key = $1", key).Scan(&e.Value, &e.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, false
	}
	require.NoError(t, err)
	return e, true
}

// SeedEntry writes value as if another process had stored it.
func SeedEntry(t *testing.T, db DBLike, key string, value []byte) int64 {
	t.Helper()

	var version int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO kv_entries (entry_key, value, version, updated_at) VALUES ($1, $2, 1, $3)
		ON CONFLICT (entry_key) DO UPDATE
		SET value = EXCLUDED.value, version = kv_entries.version + 1, updated_at = EXCLUDED.updated_at
		RETURNING version`,
		key, value, time.Now().UTC()).Scan(&version)
	require.NoError(t, err)
	return version
}

// ResetStore empties the kv table between subtests.
func ResetStore(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "TRUNCATE kv_entries")
	return err
}
