package main

import (
	"context"
	"database/sql"
	"driver-allocation-service/internal/adapters/repositories"
	"driver-allocation-service/internal/config"
	"driver-allocation-service/internal/platform/db"
	"driver-allocation-service/internal/platform/obs"
	"os"
	"strings"

	"go.uber.org/zap"
)

// dbtool creates the roster table and seeds it from JSON, for runs with ROSTER_SOURCE=postgres.
func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config", zap.Error(err))
	}

	logger, err := obs.NewLogger(cfg.Environment, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		zap.NewExample().Fatal("logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	if strings.TrimSpace(cfg.Database.URL) == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	if err := initAndSeed(ctx, logger, conn, cfg.Database.SeedPath); err != nil {
		logger.Error("dbtool failed", zap.Error(err))
		_ = conn.Close()
		os.Exit(1)
	}
}

func initAndSeed(ctx context.Context, logger *zap.Logger, conn *sql.DB, seedPath string) error {
	logger.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	logger.Info("schema ready")

	logger.Info("seeding roster", zap.String("path", seedPath))
	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return err
	}
	logger.Info("seeding complete")

	return nil
}
