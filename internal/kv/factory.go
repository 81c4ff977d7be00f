package kv

import (
	"context"
	"fmt"

	"github.com/VNoormal7/NeedsConnectV2/internal/db"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Open builds the Store selected by config.StorageBackend. The returned
// close func releases the backend's resources; it is non-nil on success.
func Open(ctx context.Context, config *types.Config) (Store, func(), error) {
	switch config.StorageBackend {
	case BackendPostgres:
		pool, err := db.Connect(ctx, config)
		if err != nil {
			return nil, nil, err
		}

		store, err := NewPostgres(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}

		return store, pool.Close, nil

	case BackendSQLite:
		store, err := NewSQLite(ctx, config.SQLitePath)
		if err != nil {
			return nil, nil, err
		}

		return store, func() { _ = store.Close() }, nil

	case BackendMemory:
		return NewMemory(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage backend %q", config.StorageBackend)
	}
}
