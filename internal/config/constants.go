package config

import "time"

// Storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultServiceName       = "farm-economy"
	DefaultSQLitePath        = "farm.db"
	DefaultGameConfigPath    = "configs/game.yaml"
	DefaultAliasesPath       = "configs/aliases.json"
	DefaultDeadLetterPath    = "logs/deadletter.jsonl"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultSeasonCacheTTL    = 10 * time.Second
	DefaultEventMaxRetries   = 3
	DefaultEventRetryDelay   = 500 * time.Millisecond
	DefaultEventLogRetention = 30

	DefaultSchedulerWorkers   = 2
	DefaultSchedulerQueueSize = 16
)

// GameSchemaName keys the embedded game schema in the validator cache
const GameSchemaName = "game.schema.json"

// Error messages
const (
	ErrMsgInvalidEnv         = "invalid %s: %w"
	ErrMsgAPIKeyRequired     = "API_KEY environment variable must be set for security"
	ErrMsgUnknownDriver      = "STORAGE_DRIVER must be %q or %q, got %q"
	ErrMsgReadGameConfig     = "failed to read game config %s: %w"
	ErrMsgParseGameConfig    = "failed to parse game config %s: %w"
	ErrMsgInvalidGameConfig  = "invalid game config %s: %w"
	ErrMsgMissingEnvVars     = "missing required environment variables: %s"
	ErrMsgSchemaVersionUnset = "ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)"
	ErrMsgSchemaVersionDiff  = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
)

// Log messages
const (
	LogMsgGameConfigMissing = "Game config not found, using defaults"
	LogMsgGameConfigLoaded  = "Loaded game config"
)
