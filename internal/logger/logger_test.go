package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWithWriter_JSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
	}, &buf)

	Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry[AttrKeyService])
	assert.Equal(t, "1.0.0", entry[AttrKeyVersion])
	assert.Equal(t, EnvironmentTest, entry[AttrKeyEnvironment])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestInitLoggerWithWriter_LevelFilter(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelWarn, Format: LogFormatText}, &buf)

	Debug("hidden")
	Info("hidden")
	assert.Empty(t, buf.String())

	Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext_RequestID(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelInfo, Format: LogFormatJSON}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))

	FromContext(ctx).Info("with id")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-req-123", entry[AttrKeyRequestID])
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
	assert.NotEmpty(t, GenerateRequestID())
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}

func TestConfigPresets(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		format    string
		level     slog.Level
		addSource bool
	}{
		{"production", ProductionConfig(), LogFormatJSON, slog.LevelInfo, false},
		{"development", DevelopmentConfig(), LogFormatText, slog.LevelDebug, true},
		{"default", DefaultConfig(), LogFormatText, slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.format, tt.config.Format)
			assert.Equal(t, tt.level, tt.config.LogLevel())
			assert.Equal(t, tt.addSource, tt.config.AddSource)
			assert.Equal(t, DefaultServiceName, tt.config.ServiceName)
		})
	}
}

func TestConfig_LogLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Config{Level: "WARNING"}.LogLevel())
	assert.Equal(t, slog.LevelInfo, Config{Level: "verbose"}.LogLevel())
}
