package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/kakwa/immowatch/internal/api/handlers"
	"github.com/kakwa/immowatch/internal/api/middleware"
	"github.com/kakwa/immowatch/internal/config"
	"github.com/kakwa/immowatch/internal/engine"
	"github.com/kakwa/immowatch/internal/notify"
	"github.com/kakwa/immowatch/internal/seloger"
	"github.com/kakwa/immowatch/internal/store"
	"github.com/kakwa/immowatch/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and refresh scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// The database is a hard dependency: refuse to start without it.
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	searchClient := seloger.NewHTTPSearchClient(
		seloger.WithSearchURL(cfg.Seloger.SearchURL),
		seloger.WithHTTPClient(&http.Client{Timeout: cfg.Seloger.Timeout}),
		seloger.WithRateLimiter(seloger.NewRateLimiter(
			cfg.Seloger.RateLimit.PerSecond,
			cfg.Seloger.RateLimit.Burst,
		)),
	)

	paginator := seloger.NewPaginator(searchClient, st,
		seloger.WithMaxPages(cfg.Seloger.MaxPages),
		seloger.WithDenylist(cfg.Seloger.Denylist),
		seloger.WithPaginatorLogger(log),
	)

	notifier := buildNotifier(cfg, log)

	eng := engine.NewEngine(st, paginator, notifier,
		engine.WithLogger(log),
		engine.WithCooldown(cfg.Schedule.Cooldown),
	)

	scheduler, err := engine.NewScheduler(eng, cfg.Schedule.PollInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Recovery(log))

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("immowatch", Version))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(st))
	handlers.RegisterStatsRoutes(api, handlers.NewStatsHandler(st))
	handlers.RegisterCycleRoutes(api, handlers.NewCycleHandler(eng))

	scheduler.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	<-scheduler.Stop().Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func buildNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	webhook := cfg.Notifications.Webhook
	if webhook.Enabled {
		return notify.NewWebhookNotifier(webhook.URL,
			notify.WithHeaders(webhook.Headers),
			notify.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
		)
	}
	return notify.NewNoOpNotifier(log)
}
