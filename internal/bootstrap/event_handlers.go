package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/FarmEconomy_Go/internal/config"
	"github.com/osse101/FarmEconomy_Go/internal/discord"
	"github.com/osse101/FarmEconomy_Go/internal/event"
	"github.com/osse101/FarmEconomy_Go/internal/eventlog"
	"github.com/osse101/FarmEconomy_Go/internal/metrics"
	"github.com/osse101/FarmEconomy_Go/internal/stream"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	Hub             *stream.Hub
	Config          *config.Config
}

// RegisterEventHandlers sets up every subscriber on the bus:
// - Metrics collector (event counters)
// - Event logger (persists events to the event log)
// - Stream subscriber (SSE and websocket fan-out)
// - Discord season announcer, when configured
//
// The returned announcer is nil when Discord is disabled.
func RegisterEventHandlers(deps EventHandlerDependencies) (*discord.SeasonAnnouncer, error) {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	if deps.Hub != nil {
		stream.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgStreamSubscriberRegistered)
	}

	if !deps.Config.DiscordEnabled() {
		slog.Info(LogMsgSeasonAnnouncerDisabled)
		return nil, nil
	}

	announcer, err := discord.NewSeasonAnnouncer(deps.Config.DiscordToken, deps.Config.DiscordChannelID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateAnnouncer, err)
	}
	announcer.Subscribe(deps.EventBus)
	slog.Info(LogMsgSeasonAnnouncerEnabled, "channel_id", deps.Config.DiscordChannelID)

	return announcer, nil
}
