package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FarmEconomy_Go/configs"
	"github.com/osse101/FarmEconomy_Go/internal/domain"
	"github.com/osse101/FarmEconomy_Go/internal/season"
	"github.com/osse101/FarmEconomy_Go/internal/validation"
)

// GameConfig is the tuning loaded from game.yaml
type GameConfig struct {
	SeasonLengths []uint32        `yaml:"season_lengths"`
	Scheduler     SchedulerConfig `yaml:"scheduler"`
}

// SchedulerConfig sizes the background worker pool
type SchedulerConfig struct {
	WorkerCount int `yaml:"worker_count"`
	QueueSize   int `yaml:"queue_size"`
}

// DefaultGameConfig returns the stock tuning
func DefaultGameConfig() *GameConfig {
	l := season.DefaultLengths()
	return &GameConfig{
		SeasonLengths: l[:],
		Scheduler: SchedulerConfig{
			WorkerCount: DefaultSchedulerWorkers,
			QueueSize:   DefaultSchedulerQueueSize,
		},
	}
}

// Lengths converts the configured day counts
func (g *GameConfig) Lengths() season.Lengths {
	var l season.Lengths
	if len(g.SeasonLengths) != domain.NumSeasons {
		return season.DefaultLengths()
	}
	copy(l[:], g.SeasonLengths)
	return l
}

// LoadGameConfig reads and validates the file at path.
// A missing file yields DefaultGameConfig.
func LoadGameConfig(path string, v validation.SchemaValidator) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Default().Warn(LogMsgGameConfigMissing, "path", path)
			return DefaultGameConfig(), nil
		}
		return nil, fmt.Errorf(ErrMsgReadGameConfig, path, err)
	}

	cfg, err := ParseGameConfig(data, v)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidGameConfig, path, err)
	}
	slog.Default().Info(LogMsgGameConfigLoaded, "path", path, "season_lengths", cfg.SeasonLengths)
	return cfg, nil
}

// ParseGameConfig validates YAML data against the embedded schema and
// fills unset values from DefaultGameConfig
func ParseGameConfig(data []byte, v validation.SchemaValidator) (*GameConfig, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(ErrMsgParseGameConfig, "yaml", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseGameConfig, "yaml", err)
	}
	if err := v.Validate(asJSON, GameSchemaName, configs.GameSchema); err != nil {
		return nil, err
	}

	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseGameConfig, "yaml", err)
	}
	if err := cfg.Lengths().Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
