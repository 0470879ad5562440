package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistik-dashboard/internal/adapters/backend"
	"logistik-dashboard/internal/api"
	"logistik-dashboard/internal/config"
	"logistik-dashboard/internal/domain"
	"logistik-dashboard/internal/platform/httpx"
	"logistik-dashboard/internal/platform/logger"
	"logistik-dashboard/internal/platform/metrics"
	"logistik-dashboard/internal/ports"
)

// main is the application composition root.
// It wires the backend adapter behind ports and starts the HTTP server.
func main() {
	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	defer func() { _ = log.Sync() }()

	m := metrics.New()

	b, err := newBackend(cfg, log, m)
	if err != nil {
		log.Error("backend setup failed", logger.Error(err))
		os.Exit(1)
	}

	router, err := api.NewRouter(api.Deps{
		Backend:        b,
		Features:       domain.DefaultFeatures(),
		Log:            log,
		Metrics:        m,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
	if err != nil {
		log.Error("router setup failed", logger.Error(err))
		os.Exit(1)
	}

	// WriteTimeout leaves room for a submit plus the page reload against a slow backend.
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      3*cfg.BackendTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening",
			logger.String("addr", srv.Addr),
			logger.String("backend_mode", cfg.BackendMode),
			logger.String("backend_url", cfg.BackendURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", logger.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", logger.Error(err))
	}
}

func newBackend(cfg config.Config, log logger.ILogger, m *metrics.Metrics) (ports.LogisticsBackend, error) {
	switch cfg.BackendMode {
	case config.BackendModeMock:
		log.Warning("using in-memory demo backend; orders are not persisted")
		return backend.NewDemoBackend(), nil
	case config.BackendModeHTTP:
		c, err := backend.NewClient(httpx.New(cfg.BackendTimeout), cfg.BackendURL, log, m)
		if err != nil {
			return nil, fmt.Errorf("new backend: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("new backend: unknown mode %q", cfg.BackendMode)
	}
}
