package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/api/handlers"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/api/middleware"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/config"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/engine"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(contextOrBackground(parent), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracingConfig(cfg))
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	a.scheduler.RecoverStaleJobRuns(ctx)
	a.scheduler.Start()
	log.Info("scheduler started", "schedule", cfg.Schedule.Cron, "lock_ttl", cfg.Schedule.LockTTL)

	if cfg.Schedule.RunOnStart {
		go func() {
			if _, err := a.scheduler.RunNow(ctx); err != nil && !errors.Is(err, engine.ErrRunInProgress) {
				log.Error("startup run failed", "error", err)
			}
		}()
	}

	e := newEcho(a, log)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	<-a.scheduler.Stop().Done()

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func newEcho(a *app, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(tracing.Middleware())
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(a.store, handlers.WithScopeProvider(a.scopes))
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Cart Abandonment Notifier API", Version))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(a.store))
	handlers.RegisterRunRoutes(api, handlers.NewRunsHandler(a.scheduler, engine.ErrRunInProgress))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(a.limiter))
	handlers.RegisterAbandonmentRoutes(api, handlers.NewAbandonmentHandler(a.store))

	return e
}

func tracingConfig(cfg *config.Config) tracing.Config {
	return tracing.Config{
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		ServiceName: cfg.Tracing.ServiceName,
		SampleRatio: cfg.Tracing.SampleRatio,
	}
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
