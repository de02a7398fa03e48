// Package database opens the storage backends and applies the embedded schema migrations.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	// registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool creates a PostgreSQL connection pool and pings it. Non-positive
// limits fall back to the package defaults.
func NewPool(connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if maxConns <= 0 {
		maxConns = DefaultMaxConnections
	}
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	config.MaxConns = int32(maxConns)
	config.MinConns = min(int32(DefaultMinConnections), config.MaxConns)
	if maxIdle <= 0 {
		maxIdle = DefaultMaxConnIdleTime
	}
	if maxLife <= 0 {
		maxLife = DefaultMaxConnLifetime
	}
	config.MaxConnLifetime = maxLife
	config.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase)
	return pool, nil
}

// SQLiteDSN builds a modernc DSN for path with WAL, foreign keys, a busy
// timeout and BEGIN IMMEDIATE transactions.
func SQLiteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", SQLiteBusyTimeoutMillis))
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "foreign_keys(1)")
	q.Set("_txlock", "immediate")
	return "file:" + path + "?" + q.Encode()
}

// OpenSQLite opens (creating if needed) the embedded database at path
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open(SQLiteDriverName, SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenSQLite, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgOpenedSQLite, "path", path)
	return db, nil
}
