package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists, per storage driver, the variables that must be set
var RequiredEnvVars = map[string][]string{
	DriverPostgres: {
		"ENV_SCHEMA_VERSION",
		"API_KEY",
		"ADMIN_API_KEY",
		"DB_USER",
		"DB_PASSWORD",
		"DB_HOST",
		"DB_PORT",
		"DB_NAME",
	},
	DriverSQLite: {
		"ENV_SCHEMA_VERSION",
		"API_KEY",
		"ADMIN_API_KEY",
		"SQLITE_PATH",
	},
}

func storageDriver() string {
	if d := strings.ToLower(os.Getenv("STORAGE_DRIVER")); d != "" {
		return d
	}
	return DriverPostgres
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf(ErrMsgSchemaVersionUnset, ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaVersionDiff, ExpectedEnvSchemaVersion, schemaVersion)
	}

	driver := storageDriver()
	required, ok := RequiredEnvVars[driver]
	if !ok {
		return fmt.Errorf(ErrMsgUnknownDriver, DriverPostgres, DriverSQLite, driver)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingEnvVars, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if storageDriver() == DriverPostgres && os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	for _, key := range []string{"API_KEY", "ADMIN_API_KEY"} {
		if os.Getenv(key) == "generate_with_openssl_rand_hex_32" {
			warnings = append(warnings, key+" appears to be using the example value - generate a secure key with: openssl rand -hex 32")
		}
	}
	if os.Getenv("API_KEY") != "" && os.Getenv("API_KEY") == os.Getenv("ADMIN_API_KEY") {
		warnings = append(warnings, "ADMIN_API_KEY matches API_KEY - every client can mutate the season")
	}
	if (os.Getenv("DISCORD_TOKEN") == "") != (os.Getenv("DISCORD_CHANNEL_ID") == "") {
		warnings = append(warnings, "DISCORD_TOKEN and DISCORD_CHANNEL_ID must both be set - season announcements are disabled")
	}

	return warnings, nil
}
