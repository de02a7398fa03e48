package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	APIKey         string // API key for authentication
	AdminAPIKey    string // Guards calendar mutation and admin routes
	TrustedProxies []string

	StorageDriver     string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBSSLMode         string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	SQLitePath        string

	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	GameConfigPath string
	AliasesPath    string

	// SeasonTickInterval schedules AdvanceDay; zero disables the scheduler
	SeasonTickInterval time.Duration
	SeasonCacheTTL     time.Duration

	EventMaxRetries       int
	EventRetryDelay       time.Duration
	EventDeadLetterPath   string
	EventLogRetentionDays int

	DiscordToken     string
	DiscordChannelID string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg, err := LoadTooling()
	if err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}
	return cfg, nil
}

// LoadTooling loads the same configuration without requiring API_KEY.
// Offline tools such as farmctl use it.
func LoadTooling() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv("API_KEY", ""),
		AdminAPIKey:    getEnv("ADMIN_API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", DriverPostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "farm"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),

		GameConfigPath: getEnv("GAME_CONFIG_PATH", DefaultGameConfigPath),
		AliasesPath:    getEnv("ALIASES_PATH", DefaultAliasesPath),

		SeasonTickInterval: getEnvAsDuration("SEASON_TICK_INTERVAL", 0),
		SeasonCacheTTL:     getEnvAsDuration("SEASON_CACHE_TTL", DefaultSeasonCacheTTL),

		EventMaxRetries:       getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:       getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath:   getEnv("DEADLETTER_PATH", DefaultDeadLetterPath),
		EventLogRetentionDays: getEnvAsInt("EVENTLOG_RETENTION_DAYS", DefaultEventLogRetention),

		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordChannelID: getEnv("DISCORD_CHANNEL_ID", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidEnv, "PORT", err)
	}
	cfg.Port = port

	if cfg.StorageDriver != DriverPostgres && cfg.StorageDriver != DriverSQLite {
		return nil, fmt.Errorf(ErrMsgUnknownDriver, DriverPostgres, DriverSQLite, cfg.StorageDriver)
	}

	return cfg, nil
}

// DiscordEnabled reports whether season announcements are configured
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration, falling back to the default when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	sslMode := c.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		sslMode,
	)
}
