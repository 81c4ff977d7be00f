package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/VNoormal7/NeedsConnectV2/internal/kv"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

func loadConfig() (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.StorageBackend == kv.BackendPostgres && c.DatabaseURL == "" {
		return nil, fmt.Errorf("set DATABASE_URL for the postgres backend")
	}

	return c, nil
}
