package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voidlabz/lootvault/internal/artifact"
	"github.com/voidlabz/lootvault/internal/bootstrap"
	"github.com/voidlabz/lootvault/internal/collection"
	"github.com/voidlabz/lootvault/internal/config"
	"github.com/voidlabz/lootvault/internal/database"
	"github.com/voidlabz/lootvault/internal/ledger"
	"github.com/voidlabz/lootvault/internal/lootbox"
	"github.com/voidlabz/lootvault/internal/market"
	"github.com/voidlabz/lootvault/internal/server"
)

const (
	dbMaxConnIdleTime = 5 * time.Minute
	dbMaxConnLifetime = 30 * time.Minute

	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Database
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	// Event system
	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		return err
	}

	// Repositories
	repos := bootstrap.InitializeRepositories(dbPool, cfg)

	// Artifact generator
	generator, err := artifact.NewClient(artifact.Config{
		BaseURL:        cfg.ArtifactBaseURL,
		APIKey:         cfg.ArtifactAPIKey,
		ImageModel:     cfg.ArtifactImageModel,
		TextModel:      cfg.ArtifactTextModel,
		ResponseFormat: cfg.ArtifactResponseFormat,
		Timeout:        cfg.ArtifactTimeout,
	})
	if err != nil {
		return err
	}

	// Local collection mirror
	blob, err := collection.NewFileBlob(cfg.DataDir)
	if err != nil {
		return err
	}
	collectionStore := collection.NewStore(blob)

	// Services
	ledgerService := ledger.NewService(repos.Ledger)
	lootboxService := lootbox.NewService(generator, repos.Collectible, ledgerService, resilientPublisher)
	marketService := market.NewService(collectionStore, resilientPublisher)

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		cfg.TrustedProxies,
		dbPool,
		ledgerService,
		lootboxService,
		marketService,
		collectionStore,
		repos.Collectible,
		resilientPublisher,
	)

	// Run until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: resilientPublisher,
	})

	return nil
}
