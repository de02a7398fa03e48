package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	DefaultMaxConnections  = 10
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = time.Hour
)

// SQLite
const (
	// SQLiteDriverName is the database/sql name registered by modernc.org/sqlite
	SQLiteDriverName = "sqlite"

	// SQLiteBusyTimeoutMillis bounds how long a writer waits for the file lock
	SQLiteBusyTimeoutMillis = 5000
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenSQLite      = "failed to open sqlite database"
	ErrMsgFailedToCreateMigrator  = "failed to create migration provider"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgUnsupportedDialect      = "unsupported migration dialect"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgOpenedSQLite                    = "Opened sqlite database"
	LogMsgMigrationApplied                = "Applied migration"
	LogMsgMigrationsComplete              = "Migrations complete"
)
