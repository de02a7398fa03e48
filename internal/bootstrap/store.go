package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/FarmEconomy_Go/internal/config"
	"github.com/osse101/FarmEconomy_Go/internal/database"
	"github.com/osse101/FarmEconomy_Go/internal/database/postgres"
	"github.com/osse101/FarmEconomy_Go/internal/database/sqlite"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
)

// OpenStore connects the configured storage backend and applies pending
// migrations. The caller owns the returned store and must Close it.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf(ErrMsgUnsupportedStorage, cfg.StorageDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}

	version, err := database.MigratePool(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	slog.Info(LogMsgStorageReady, "driver", config.DriverPostgres, "host", cfg.DBHost, "db", cfg.DBName, "version", version)
	return postgres.NewStore(pool), nil
}

func openSQLite(ctx context.Context, path string) (repository.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
	}

	db, err := database.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}

	version, err := database.Migrate(ctx, db, database.DialectSQLite)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	slog.Info(LogMsgStorageReady, "driver", config.DriverSQLite, "path", path, "version", version)
	return sqlite.NewStore(db), nil
}
