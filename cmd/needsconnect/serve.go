package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/VNoormal7/NeedsConnectV2/internal/auth"
	"github.com/VNoormal7/NeedsConnectV2/internal/basket"
	"github.com/VNoormal7/NeedsConnectV2/internal/kv"
	"github.com/VNoormal7/NeedsConnectV2/internal/needs"
	"github.com/VNoormal7/NeedsConnectV2/internal/seed"
	"github.com/VNoormal7/NeedsConnectV2/internal/server"
	"github.com/VNoormal7/NeedsConnectV2/internal/volunteer"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	store, closeStore, err := kv.Open(ctx, config)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := seed.Initialize(ctx, store); err != nil {
		return err
	}

	needsRepo := needs.NewRepository(store)
	ledger := needs.NewLedger(needsRepo)
	basketCoordinator := basket.NewCoordinator(store, needsRepo)
	ledger.Subscribe(basketCoordinator.HandleFundingApplied)

	taskRepo := volunteer.NewTaskRepository(store)
	volunteerRepo := volunteer.NewVolunteerRepository(store)
	sessions := auth.NewSessions(store, config)

	srv := server.New(
		config,
		logger,
		sessions,
		needsRepo,
		ledger,
		basketCoordinator,
		taskRepo,
		volunteerRepo,
	)

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
