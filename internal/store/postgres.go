package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fishmart/internal/port"
)

type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Store persisted in the store_entries table,
// see migrations/01_store_entries.up.sql.
func NewPostgres(pool *pgxpool.Pool) (port.Store, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM store_entries WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return value, true, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO store_entries (key, value)
		 VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	_, err := s.pool.Exec(ctx, `DELETE FROM store_entries WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}
