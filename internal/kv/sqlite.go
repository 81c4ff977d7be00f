package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

// SQLite is the embedded single-file Store for local deployments.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// Single logical writer; serializing at the pool keeps SQLITE_BUSY away.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure kv table: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, key string, out any) error {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrKeyNotFound
	}
	if err != nil {
		return &types.PersistenceError{Op: "get", Key: key, Err: err}
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &types.PersistenceError{Op: "get", Key: key, Err: err}
	}

	return nil
}

func (s *SQLite) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &types.PersistenceError{Op: "set", Key: key, Err: err}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, string(raw))
	if err != nil {
		return &types.PersistenceError{Op: "set", Key: key, Err: err}
	}

	return nil
}

func (s *SQLite) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return &types.PersistenceError{Op: "remove", Key: key, Err: err}
	}

	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
