package kv

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

const kvTableName = "needsconnect.kv"

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Postgres stores each key as a row in a keyed jsonb table.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (*Postgres, error) {
	s := &Postgres{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Postgres) ensureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE SCHEMA IF NOT EXISTS needsconnect`,
		`CREATE TABLE IF NOT EXISTS ` + kvTableName + ` (
			key   text PRIMARY KEY,
			value jsonb NOT NULL
		)`,
	}

	for _, statement := range statements {
		if _, err := s.pool.Exec(ctx, statement); err != nil {
			return fmt.Errorf("failed to ensure kv schema: %w", err)
		}
	}

	return nil
}

func (s *Postgres) Get(ctx context.Context, key string, out any) error {
	query, args, err := psql().
		Select("value").
		From(kvTableName).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate kv get query: %w", err)
	}

	var raw []byte
	err = pgxscan.Get(ctx, s.pool, &raw, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return &types.PersistenceError{Op: "get", Key: key, Err: err}
	}

	if err != nil {
		return ErrKeyNotFound
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &types.PersistenceError{Op: "get", Key: key, Err: err}
	}

	return nil
}

func (s *Postgres) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &types.PersistenceError{Op: "set", Key: key, Err: err}
	}

	query, args, err := psql().
		Insert(kvTableName).
		Columns("key", "value").
		Values(key, raw).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate kv set query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return &types.PersistenceError{Op: "set", Key: key, Err: err}
	}

	return nil
}

func (s *Postgres) Remove(ctx context.Context, key string) error {
	query, args, err := psql().
		Delete(kvTableName).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate kv remove query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return &types.PersistenceError{Op: "remove", Key: key, Err: err}
	}

	return nil
}
