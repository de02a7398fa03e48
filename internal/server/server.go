package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/FarmEconomy_Go/internal/eventlog"
	"github.com/osse101/FarmEconomy_Go/internal/farm"
	"github.com/osse101/FarmEconomy_Go/internal/handler"
	"github.com/osse101/FarmEconomy_Go/internal/logger"
	"github.com/osse101/FarmEconomy_Go/internal/metrics"
	"github.com/osse101/FarmEconomy_Go/internal/naming"
	"github.com/osse101/FarmEconomy_Go/internal/season"
	"github.com/osse101/FarmEconomy_Go/internal/stream"
)

// Config holds the transport settings
type Config struct {
	Port           int
	APIKey         string
	AdminAPIKey    string
	TrustedProxies []string
}

// Deps are the services the router dispatches to
type Deps struct {
	Store    handler.Pinger
	Farm     farm.Service
	Season   season.Service
	EventLog eventlog.Service
	Names    naming.Resolver
	Hub      *stream.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

func gzipMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// NewRouter builds the full route tree
func NewRouter(cfg Config, deps Deps) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	guard := NewClientGuard(cfg.TrustedProxies)

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware)
	r.Use(AuthMiddleware(cfg.APIKey, guard))
	r.Use(RateLimitMiddleware(guard))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	farmHandler := handler.NewFarmHandler(deps.Farm, deps.Names)
	seasonHandler := handler.NewSeasonHandler(deps.Season)
	adminEvents := handler.NewAdminEventsHandler(deps.EventLog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(IdentityMiddleware)

		// Streams stay uncompressed so frames flush immediately
		r.Get("/events/stream", stream.SSEHandler(deps.Hub))
		r.Get("/events/ws", stream.WSHandler(deps.Hub))

		r.Group(func(r chi.Router) {
			r.Use(gzipMiddleware)

			r.Route("/farm", func(r chi.Router) {
				r.Post("/init", farmHandler.Init)
				r.Get("/", farmHandler.GetLedger)
				r.Post("/plant", farmHandler.Plant)
				r.Post("/harvest", farmHandler.Harvest)
				r.Post("/clear", farmHandler.Clear)
				r.Post("/fallow", farmHandler.Fallow)
				r.Post("/water", farmHandler.Water)
				r.Post("/fertilize", farmHandler.Fertilize)
				r.Post("/refill", farmHandler.Refill)
				r.Post("/tools/buy", farmHandler.BuyTool)
				r.Post("/gather", farmHandler.Gather)
				r.Post("/craft", farmHandler.Craft)
				r.Post("/craft/claim", farmHandler.Claim)
				r.Post("/compost/collect", farmHandler.CollectCompost)
				r.Get("/patterns/{plot}", farmHandler.CheckPatterns)
			})

			r.Get("/season", seasonHandler.Get)

			r.Route("/catalog", func(r chi.Router) {
				r.Get("/", handler.HandleGetCatalog())
				r.Get("/crops", handler.HandleGetCrops())
				r.Get("/tools", handler.HandleGetTools())
				r.Get("/resources", handler.HandleGetResources())
				r.Get("/recipes", handler.HandleGetRecipes())
				r.Get("/patterns", handler.HandleGetPatterns())
			})

			r.Group(func(r chi.Router) {
				r.Use(AdminMiddleware(cfg.AdminAPIKey))

				r.Post("/season/advance", seasonHandler.Advance)
				r.Post("/season/set", seasonHandler.Set)

				r.Route("/admin", func(r chi.Router) {
					r.Get("/events", adminEvents.HandleGetEvents)
					r.Post("/reload-aliases", handler.HandleReloadAliases(deps.Names))
				})
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		out[k] = v
		for _, s := range sensitiveHeaders {
			if strings.EqualFold(k, s) {
				out[k] = []string{RedactedValue}
				break
			}
		}
	}
	return out
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		// chi's wrapper keeps Flusher and Hijacker for the stream routes
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the router, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
