package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/FarmEconomy_Go/internal/bootstrap"
	"github.com/osse101/FarmEconomy_Go/internal/config"
	"github.com/osse101/FarmEconomy_Go/internal/logger"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
	"github.com/osse101/FarmEconomy_Go/internal/season"
	"github.com/osse101/FarmEconomy_Go/internal/validation"
)

// app carries the configuration shared by every subcommand
type app struct {
	cfg *config.Config

	driver     string
	sqlitePath string
	gamePath   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "farmctl",
		Short: "Administer a farm economy deployment",
		Long: `farmctl works directly against the farm store configured in the
environment (or .env). It can inspect and move the season calendar, apply
migrations, export and import snapshots and print the static catalog.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	root.PersistentFlags().StringVar(&a.driver, "driver", "", "storage driver override (postgres or sqlite)")
	root.PersistentFlags().StringVar(&a.sqlitePath, "sqlite-path", "", "sqlite database file override")
	root.PersistentFlags().StringVar(&a.gamePath, "game-config", "", "game config override")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(seasonCmd(a))
	root.AddCommand(migrateCmd(a))
	root.AddCommand(snapshotCmd(a))
	root.AddCommand(catalogCmd())

	return root
}

func (a *app) load() error {
	cfg, err := config.LoadTooling()
	if err != nil {
		return err
	}
	if a.driver != "" {
		cfg.StorageDriver = a.driver
	}
	if a.sqlitePath != "" {
		cfg.SQLitePath = a.sqlitePath
	}
	if a.gamePath != "" {
		cfg.GameConfigPath = a.gamePath
	}
	a.cfg = cfg

	level := "warn"
	if a.verbose {
		level = "debug"
	}
	logger.InitLoggerWithWriter(logger.NewConfig(level, "text", "farmctl", cfg.Version, cfg.Environment, false), os.Stderr)
	return nil
}

func (a *app) openStore(ctx context.Context) (repository.Store, error) {
	return bootstrap.OpenStore(ctx, a.cfg)
}

func (a *app) lengths() (season.Lengths, error) {
	game, err := config.LoadGameConfig(a.cfg.GameConfigPath, validation.NewSchemaValidator())
	if err != nil {
		return season.Lengths{}, err
	}
	return game.Lengths(), nil
}
