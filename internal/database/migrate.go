package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Dialect selects the migration set
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Migrations returns the embedded migration files for d
func Migrations(d Dialect) (fs.FS, error) {
	switch d {
	case DialectPostgres, DialectSQLite:
		return fs.Sub(migrationsFS, "migrations/"+string(d))
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedDialect, d)
	}
}

func newProvider(db *sql.DB, d Dialect) (*goose.Provider, error) {
	fsys, err := Migrations(d)
	if err != nil {
		return nil, err
	}
	gd := goose.DialectPostgres
	if d == DialectSQLite {
		gd = goose.DialectSQLite3
	}
	p, err := goose.NewProvider(gd, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}
	return p, nil
}

// Migrate applies every pending migration and returns the resulting version
func Migrate(ctx context.Context, db *sql.DB, d Dialect) (int64, error) {
	p, err := newProvider(db, d)
	if err != nil {
		return 0, err
	}

	results, err := p.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
	}

	version, err := p.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	slog.Default().Info(LogMsgMigrationsComplete, "dialect", d, "version", version)
	return version, nil
}

// MigratePool runs Migrate over a pgx pool through the database/sql adapter
func MigratePool(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return Migrate(ctx, db, DialectPostgres)
}
