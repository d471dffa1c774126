package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"storefront-cart/internal/infra"

	_ "modernc.org/sqlite" // SQLite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	entry_key  TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	version    INTEGER NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewSQLiteStore(ctx context.Context, dir string, logger *slog.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, infra.WrapErr(logger, infra.KindStoreFailure, "create store directory", err)
	}
	dsn := "file:" + filepath.Join(dir, "storefront.db") + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	return OpenSQLite(ctx, dsn, logger)
}

// OpenSQLite opens a store on an explicit DSN, e.g. "file::memory:".
func OpenSQLite(ctx context.Context, dsn string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, infra.WrapErr(logger, infra.KindStoreFailure, "open sqlite", err)
	}
	// One connection keeps :memory: databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, infra.WrapErr(logger, infra.KindStoreFailure, "create kv schema", err)
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (Entry, error) {
	var e Entry
	err := s.db.QueryRowContext(ctx,
		`SELECT value, version FROM kv_entries WHERE entry_key = ?`, key,
	).Scan(&e.Value, &e.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, nil
	}
	if err != nil {
		return Entry{}, infra.WrapErr(s.logger, infra.KindStoreFailure, "get entry", err)
	}
	return e, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) (int64, error) {
	var version int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO kv_entries (entry_key, value, version, updated_at) VALUES (?, ?, 1, ?)
		ON CONFLICT (entry_key) DO UPDATE
		SET value = excluded.value, version = kv_entries.version + 1, updated_at = excluded.updated_at
		RETURNING version`,
		key, nonNil(value), time.Now().UTC(),
	).Scan(&version)
	if err != nil {
		return 0, infra.WrapErr(s.logger, infra.KindStoreFailure, "set entry", err)
	}
	return version, nil
}

func (s *SQLiteStore) CompareAndSet(ctx context.Context, key string, expected int64, value []byte) (int64, error) {
	var (
		row     *sql.Row
		version int64
	)
	if expected == 0 {
		row = s.db.QueryRowContext(ctx, `
			INSERT INTO kv_entries (entry_key, value, version, updated_at) VALUES (?, ?, 1, ?)
			ON CONFLICT (entry_key) DO NOTHING
			RETURNING version`,
			key, nonNil(value), time.Now().UTC())
	} else {
		row = s.db.QueryRowContext(ctx, `
			UPDATE kv_entries SET value = ?, version = version + 1, updated_at = ?
			WHERE entry_key = ? AND version = ?
			RETURNING version`,
			nonNil(value), time.Now().UTC(), key, expected)
	}

	err := row.Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, conflictErr(s.logger, key, expected)
	}
	if err != nil {
		return 0, infra.WrapErr(s.logger, infra.KindStoreFailure, "compare and set entry", err)
	}
	return version, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// value columns are NOT NULL; a nil slice would bind as NULL.
func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
