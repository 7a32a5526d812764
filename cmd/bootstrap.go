package cmd

import (
	"context"
	"fmt"

	"trade-ledger/core/config"
	"trade-ledger/core/database"
	"trade-ledger/core/keyvalue"
	"trade-ledger/core/ledger/store"
	"trade-ledger/core/logger"
	"trade-ledger/core/storage"

	"go.uber.org/zap"
)

// bootstrap loads configuration and builds the application logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, l, nil
}

// openStore connects only the dependency the configured ledger backend needs and
// opens the store. The returned closer releases that connection.
func openStore(ctx context.Context, cfg *config.Config, l *zap.Logger) (store.Store, func(), error) {
	deps := store.Deps{}
	closer := func() {}

	switch cfg.Ledger.Backend {
	case store.BackendDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		deps.DB = db
		closer = func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		l.Info("Connected to ledger database", zap.String("driver", cfg.Database.Driver))
	case store.BackendStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		deps.Objects = client
		deps.Bucket = cfg.Storage.Bucket
	case store.BackendRedis:
		rdb, err := keyvalue.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		deps.Redis = rdb
		closer = func() { _ = rdb.Close() }
		l.Info("Connected to redis", zap.String("addr", cfg.Redis.Addr))
	}

	s, err := store.Open(ctx, cfg.Ledger, deps)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("failed to open ledger store: %w", err)
	}

	l.Debug("Ledger store ready",
		zap.String("backend", cfg.Ledger.Backend),
		zap.Duration("cache_ttl", cfg.Ledger.CacheTTL()),
	)
	return s, closer, nil
}
