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

	"github.com/SscSPs/ledger_dashboard/internal/adapters/restapi"
	"github.com/SscSPs/ledger_dashboard/internal/adapters/sessionstore"
	portsrepo "github.com/SscSPs/ledger_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard/internal/core/services"
	"github.com/SscSPs/ledger_dashboard/internal/handlers"
	"github.com/SscSPs/ledger_dashboard/internal/middleware"
	"github.com/SscSPs/ledger_dashboard/internal/platform/config"
	"github.com/SscSPs/ledger_dashboard/internal/utils"
	"github.com/SscSPs/ledger_dashboard/internal/views"
	"github.com/gin-gonic/gin"
)

const (
	purgeInterval   = 15 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// @title Ledger Dashboard API
// @version 1.0
// @description Backend for the accounting dashboard: sessions, journal drafts, reports and exports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session ID.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	store, err := sessionstore.Open(cfg.SessionDBPath)
	if err != nil {
		logger.Error("Failed to open session store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("Error closing session store", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Session store opened", slog.String("path", cfg.SessionDBPath))

	api := restapi.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	repos := portsrepo.RepositoryProvider{
		AuthRepo:      api,
		AccountRepo:   api,
		CategoryRepo:  api,
		CompanyRepo:   api,
		UserRepo:      api,
		JournalRepo:   api,
		ReportingRepo: api,
		AuditRepo:     api,
		SessionRepo:   store,
	}

	registry := views.NewRegistry(cfg.SearchDebounce)
	container := services.NewServiceContainer(cfg, repos, services.WithSessionEndHook(registry.Forget))

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container, registry, posthogClient); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go purgeSessions(ctx, logger, container.Auth)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("api", cfg.APIBaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if !cfg.IsProduction {
		opts.Level = slog.LevelDebug
	}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// purgeSessions drops idle sessions until ctx is cancelled.
func purgeSessions(ctx context.Context, logger *slog.Logger, auth portssvc.AuthSvc) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := auth.PurgeExpired(ctx)
			if err != nil {
				logger.Error("Failed to purge sessions", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				logger.Info("Purged expired sessions", slog.Int("count", n))
			}
		}
	}
}
