package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/skycard/internal/adapters/http/api"
	"github.com/okian/skycard/internal/adapters/http/swagger"
	"github.com/okian/skycard/internal/adapters/upstream"
	service "github.com/okian/skycard/internal/app"
	"github.com/okian/skycard/internal/config"
	"github.com/okian/skycard/internal/render"
	"github.com/okian/skycard/pkg/logger"
	"github.com/okian/skycard/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 30 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics
	// We collect our own custom system metrics instead
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger options come from config, so report on stderr
		_, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(loggerOptions(cfg)...); err != nil {
		_, _ = os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			_, _ = os.Stderr.WriteString("failed to close log file: " + err.Error() + "\n")
		}
	}()

	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	metrics.Configure(metricsOptions(cfg)...)

	handler, err := newHandler(ctx, cfg, loggerInstance)
	if err != nil {
		loggerInstance.Fatal(ctx, "failed to build service", logger.Error(err))
	}

	// Start system metrics updater
	if metrics.Enabled() {
		go startSystemMetricsUpdater(ctx, metrics.SystemRefreshInterval())
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			loggerInstance.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// loggerOptions maps the logging keys of cfg to logger options.
func loggerOptions(cfg *config.Config) []logger.Option {
	opts := []logger.Option{logger.WithJSON(cfg.LogJSON)}
	if cfg.LogFile != "" {
		opts = append(opts, logger.WithFile(cfg.LogFile, 0, 0))
	}
	return opts
}

// metricsOptions maps the metrics keys of cfg to metrics options.
func metricsOptions(cfg *config.Config) []metrics.Option {
	return []metrics.Option{
		metrics.WithMetricsEnabled(cfg.MetricsEnabled),
		metrics.WithRefreshInterval(cfg.MetricsRefresh()),
	}
}

// newHandler wires the renderer, upstream clients, card service and routes.
// A corrupt embedded asset is reported here, before the server starts.
func newHandler(ctx context.Context, cfg *config.Config, l logger.Logger) (http.Handler, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	client := upstream.NewHTTPClient(cfg.UpstreamTimeout())
	upstreamOpts := []upstream.Option{
		upstream.WithHTTPClient(client),
		upstream.WithLogger(l.Named("upstream")),
	}

	svc, err := service.New(
		service.WithLogger(l.Named("card")),
		service.WithDirectory(upstream.NewDirectory(cfg.DirectoryURL, upstreamOpts...)),
		service.WithProfiles(upstream.NewProfiles(cfg.ProfilesURL, cfg.ProfilesKey, upstreamOpts...)),
		service.WithWeights(upstream.NewWeights(cfg.WeightURL, cfg.WeightKey, upstreamOpts...)),
		service.WithAvatars(upstream.NewAvatars(cfg.AvatarURL, upstreamOpts...)),
		service.WithRenderer(renderer),
	)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// API docs at /api-docs and /openapi.yaml
	swagger.Register(ctx, mux)

	apiServer := api.NewServer(svc,
		api.WithProjectURL(cfg.ProjectURL),
		api.WithForumUserAgent(cfg.ForumUserAgent),
		api.WithLogger(l.Named("api")),
	)
	apiServer.Register(ctx, mux)

	return api.RequestLogger(mux, l.Named("http")), nil
}

// startSystemMetricsUpdater updates system metrics every interval until ctx is done.
func startSystemMetricsUpdater(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
