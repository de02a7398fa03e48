// @title Farm Economy API
// @version 1.0
// @description Per-player 5x5 farms with seasons, crop synergies, tools, crafting and compost.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/FarmEconomy_Go/docs"
	"github.com/osse101/FarmEconomy_Go/internal/bootstrap"
	"github.com/osse101/FarmEconomy_Go/internal/config"
	"github.com/osse101/FarmEconomy_Go/internal/server"
	"github.com/osse101/FarmEconomy_Go/internal/stream"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	slog.Info("Starting farm economy",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.StorageDriver,
		"port", cfg.Port)

	ctx := context.Background()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}

	_, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		store.Close()
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	svcs, err := bootstrap.InitializeServices(cfg, store, publisher)
	if err != nil {
		store.Close()
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	hub := stream.NewHub()
	hub.Start()

	announcer, err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        publisher,
		EventLogService: svcs.EventLog,
		Hub:             hub,
		Config:          cfg,
	})
	if err != nil {
		hub.Stop()
		store.Close()
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	background := bootstrap.StartBackground(cfg, svcs)

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		AdminAPIKey:    cfg.AdminAPIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Deps{
		Store:    store,
		Farm:     svcs.Farm,
		Season:   svcs.Season,
		EventLog: svcs.EventLog,
		Names:    svcs.Names,
		Hub:      hub,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("Received shutdown signal", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Background:         background,
		Hub:                hub,
		Announcer:          announcer,
		ResilientPublisher: publisher,
		Store:              store,
	})
}
