package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/VNoormal7/NeedsConnectV2/internal/kv"
	"github.com/VNoormal7/NeedsConnectV2/internal/seed"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the store with the sample needs catalog",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		store, closeStore, err := kv.Open(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer closeStore()

		logrus.Info("Seeding sample needs...")
		if err := seed.Initialize(ctx, store); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}

		logrus.Info("Seed complete")

		return nil
	},
}
