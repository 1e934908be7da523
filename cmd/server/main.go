package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/buildinfo"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/config"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/server"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/storage/inmemory"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/storage/postgres"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildinfo.PrintBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := config.NewServerConfig()

	var storage server.Storage
	if config.DatabaseDsn != "" {
		pgStorage, err := postgres.NewPostgresStorage(ctx, config.DatabaseDsn)
		if err != nil {
			config.Logger.Fatal(err)
		}
		defer pgStorage.Close()
		storage = pgStorage
	} else {
		memStorage := inmemory.NewMemStorage()
		if config.FileStoragePath != "" {
			if config.Restore {
				if err := memStorage.LoadFromFile(ctx, config.FileStoragePath); err != nil {
					config.Logger.Errorf("failed to restore analyses: %v", err)
				}
			}
			go runSnapshots(ctx, memStorage, config)
		}
		storage = memStorage
	}

	config.Logger.Infof("Server config: Addr=%s, StoreInterval=%d, FileStoragePath=%q, Restore=%t, DatabaseDSN set=%t, RateLimit=%.1f",
		config.Addr,
		config.StoreInterval,
		config.FileStoragePath,
		config.Restore,
		config.DatabaseDsn != "",
		config.RateLimit,
	)

	srv := server.NewServer(storage, config)
	if err := srv.Run(ctx); err != nil {
		config.Logger.Fatal(err)
	}
}

// runSnapshots periodically writes the in-memory store to disk and takes a
// final snapshot on shutdown.
func runSnapshots(ctx context.Context, store *inmemory.MemStorage, cfg *config.ServerConfig) {
	interval := time.Duration(cfg.StoreInterval) * time.Second
	if interval <= 0 {
		interval = 300 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := store.SaveToFile(ctx, cfg.FileStoragePath); err != nil {
				cfg.Logger.Errorf("failed to snapshot analyses: %v", err)
			}
		case <-ctx.Done():
			snapshotCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := store.SaveToFile(snapshotCtx, cfg.FileStoragePath); err != nil {
				cfg.Logger.Errorf("failed to snapshot analyses on shutdown: %v", err)
			}
			cancel()
			return
		}
	}
}
