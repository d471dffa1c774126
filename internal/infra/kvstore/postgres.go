package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront-cart/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	entry_key  TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	version    BIGINT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// PostgresStore lets several devices of one shopper share a cart through a
// common database.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresStore(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, infra.WrapErr(logger, infra.KindStoreFailure, "create pgx pool", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, infra.WrapErr(logger, infra.KindStoreFailure, "ping postgres", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, infra.WrapErr(logger, infra.KindStoreFailure, "create kv schema", err)
	}
	return &PostgresStore{pool: pool, logger: logger}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (Entry, error) {
	var e Entry
	err := s.pool.QueryRow(ctx,
		`SELECT value, version FROM kv_entries WHERE entry_key = $1`, key,
	).Scan(&e.Value, &e.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, nil
	}
	if err != nil {
		return Entry{}, infra.WrapErr(s.logger, infra.KindStoreFailure, "get entry", err)
	}
	return e, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) (int64, error) {
	var version int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO kv_entries (entry_key, value, version, updated_at) VALUES ($1, $2, 1, $3)
		ON CONFLICT (entry_key) DO UPDATE
		SET value = EXCLUDED.value, version = kv_entries.version + 1, updated_at = EXCLUDED.updated_at
		RETURNING version`,
		key, nonNil(value), time.Now().UTC(),
	).Scan(&version)
	if err != nil {
		return 0, infra.WrapErr(s.logger, infra.KindStoreFailure, "set entry", err)
	}
	return version, nil
}

func (s *PostgresStore) CompareAndSet(ctx context.Context, key string, expected int64, value []byte) (int64, error) {
	var row pgx.Row
	if expected == 0 {
		row = s.pool.QueryRow(ctx, `
			INSERT INTO kv_entries (entry_key, value, version, updated_at) VALUES ($1, $2, 1, $3)
			ON CONFLICT (entry_key) DO NOTHING
			RETURNING version`,
			key, nonNil(value), time.Now().UTC())
	} else {
		row = s.pool.QueryRow(ctx, `
			UPDATE kv_entries SET value = $1, version = version + 1, updated_at = $2
			WHERE entry_key = $3 AND version = $4
			RETURNING version`,
			nonNil(value), time.Now().UTC(), key, expected)
	}

	var version int64
	err := row.Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, conflictErr(s.logger, key, expected)
	}
	if err != nil {
		return 0, infra.WrapErr(s.logger, infra.KindStoreFailure, "compare and set entry", err)
	}
	return version, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
