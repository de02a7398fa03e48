package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FarmEconomy_Go/internal/discord"
	"github.com/osse101/FarmEconomy_Go/internal/event"
	"github.com/osse101/FarmEconomy_Go/internal/repository"
	"github.com/osse101/FarmEconomy_Go/internal/server"
	"github.com/osse101/FarmEconomy_Go/internal/stream"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Background         *Background
	Hub                *stream.Hub
	Announcer          *discord.SeasonAnnouncer
	ResilientPublisher *event.ResilientPublisher
	Store              repository.Store
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler, cleanup worker and worker pool
// 3. Event publisher (flush pending retries)
// 4. Stream hub and Discord session
// 5. Store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if b := c.Background; b != nil {
		b.Scheduler.Stop()
		if err := b.Cleanup.Shutdown(ctx); err != nil {
			slog.Error(LogMsgCleanupWorkerFailed, "error", err)
		}
		b.Pool.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Announcer != nil {
		if err := c.Announcer.Close(); err != nil {
			slog.Error(LogMsgAnnouncerCloseFailed, "error", err)
		}
	}

	if c.Store != nil {
		c.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
