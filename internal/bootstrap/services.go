package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/FarmEconomy_Go/internal/config"
	"github.com/osse101/FarmEconomy_Go/internal/event"
	"github.com/osse101/FarmEconomy_Go/internal/eventlog"
	"github.com/osse101/FarmEconomy_Go/internal/farm"
	"github.com/osse101/FarmEconomy_Go/internal/naming"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
	"github.com/osse101/FarmEconomy_Go/internal/scheduler"
	"github.com/osse101/FarmEconomy_Go/internal/season"
	"github.com/osse101/FarmEconomy_Go/internal/validation"
	"github.com/osse101/FarmEconomy_Go/internal/worker"
)

// Services holds the application services built over one store and bus
type Services struct {
	Game     *config.GameConfig
	Season   season.Service
	Farm     farm.Service
	EventLog eventlog.Service
	Names    naming.Resolver
}

// InitializeServices loads the game config and alias file and wires every
// service to store and bus.
func InitializeServices(cfg *config.Config, store repository.Store, bus event.Bus) (*Services, error) {
	game, err := config.LoadGameConfig(cfg.GameConfigPath, validation.NewSchemaValidator())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadGame, err)
	}
	lengths := game.Lengths()
	slog.Info(LogMsgGameConfigReady, "season_lengths", lengths[:])

	names, err := naming.NewResolver(cfg.AliasesPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadAliases, err)
	}
	slog.Info(LogMsgAliasesLoaded, "path", cfg.AliasesPath)

	seasonService := season.NewService(store, bus, lengths, nil, cfg.SeasonCacheTTL)

	return &Services{
		Game:     game,
		Season:   seasonService,
		Farm:     farm.NewService(store, seasonService, bus, nil),
		EventLog: eventlog.NewService(store),
		Names:    names,
	}, nil
}

// Background holds the scheduled work started by StartBackground
type Background struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
	Cleanup   *worker.DailyWorker
}

// StartBackground starts the worker pool, the season tick (when
// SeasonTickInterval is positive) and the daily event log cleanup.
func StartBackground(cfg *config.Config, svcs *Services) *Background {
	pool := worker.NewPool(svcs.Game.Scheduler.WorkerCount, svcs.Game.Scheduler.QueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	if cfg.SeasonTickInterval > 0 {
		sched.Schedule(JobNameSeasonAdvance, cfg.SeasonTickInterval, season.NewAdvanceJob(svcs.Season))
		slog.Info(LogMsgSchedulerStarted, "interval", cfg.SeasonTickInterval,
			"workers", svcs.Game.Scheduler.WorkerCount, "queue_size", svcs.Game.Scheduler.QueueSize)
	} else {
		slog.Info(LogMsgSchedulerDisabled)
	}

	cleanup := worker.NewDailyWorker(JobNameEventLogCleanup,
		eventlog.NewCleanupJob(svcs.EventLog, cfg.EventLogRetentionDays), EventLogCleanupHour, nil)
	cleanup.Start()
	slog.Info(LogMsgCleanupWorkerReady, "hour_utc", EventLogCleanupHour, "retention_days", cfg.EventLogRetentionDays)

	return &Background{Pool: pool, Scheduler: sched, Cleanup: cleanup}
}
