package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"jobboard-api/config"
	"jobboard-api/internal/application/services"
	"jobboard-api/internal/infrastructure/db/postgres"
	"jobboard-api/internal/infrastructure/db/postgres/company"
	"jobboard-api/internal/infrastructure/db/postgres/talent"
	"jobboard-api/internal/infrastructure/db/postgres/user"
	"jobboard-api/internal/infrastructure/objectstore"
)

// migrateuploads moves locally staged uploads into the durable object
// store and rewrites the database references to their canonical form.
// Exits non-zero when the storage config is incomplete or any candidate
// failed, so schedulers can retry the batch.
func main() {
	ctx := context.Background()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	if err = godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file loaded", zap.Error(err))
	}
	cfg := config.Load()

	if err = cfg.Storage.Validate(); err != nil {
		logger.Error("storage config error", zap.Error(err))
		os.Exit(1)
	}

	store, err := objectstore.New(logger, cfg.Storage)
	if err != nil {
		logger.Error("failed to connect to object store", zap.Error(err))
		os.Exit(1)
	}

	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Error("DB config error", zap.Error(err))
		os.Exit(1)
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Error("failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer dbPool.Close()

	// The advisory lock needs its own connection for the whole run; on
	// the pool it would lapse whenever the pooled connection is reaped.
	lockConn, err := dbPool.Acquire(ctx)
	if err != nil {
		logger.Error("failed to acquire lock connection", zap.Error(err))
		os.Exit(1)
	}
	defer lockConn.Release()

	migrator := services.NewMigrator(
		logger,
		lockConn,
		store,
		company.NewRepository(dbPool),
		user.NewRepository(dbPool),
		talent.NewRepository(dbPool),
		cfg.Uploads.Root,
	)

	report, err := migrator.Run(ctx)
	if err != nil {
		logger.Error("migration run error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("migration finished",
		zap.Int("migrated", report.Migrated),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
	if report.Failed > 0 {
		os.Exit(1)
	}
}
