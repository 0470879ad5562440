package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"logistik-dashboard/internal/api/handlers"
	"logistik-dashboard/internal/api/views"
	"logistik-dashboard/internal/domain"
	"logistik-dashboard/internal/platform/logger"
	"logistik-dashboard/internal/platform/metrics"
	"logistik-dashboard/internal/ports"
	"logistik-dashboard/internal/services"
)

type Deps struct {
	Backend        ports.LogisticsBackend
	Features       []domain.Feature
	Log            logger.ILogger
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) (http.Handler, error) {
	if d.Backend == nil {
		return nil, errors.New("new router: backend is required")
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Features == nil {
		d.Features = domain.DefaultFeatures()
	}

	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}

	featureHandler := &handlers.FeatureHandler{
		Launcher: services.NewFeatureLauncher(d.Features),
		Views:    renderer,
		Log:      d.Log,
	}
	transportHandler := &handlers.TransportHandler{
		Backend: d.Backend,
		Views:   renderer,
		Log:     d.Log,
		Metrics: d.Metrics,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(d.Log, d.Metrics))
	r.Use(middleware.Recoverer)

	r.Get("/", featureHandler.Landing)
	r.Post("/features/{index}", featureHandler.Activate)

	r.Get("/transportauftrag", transportHandler.Page)
	r.Post("/transportauftrag", transportHandler.Submit)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
			MaxAge:         300,
		}))

		r.Get("/features", featureHandler.List)
		r.Get("/fahrzeit", transportHandler.TravelTime)
		r.Get("/zeitslots", transportHandler.TimeSlots)
	})

	r.Get("/health", handlers.Health(d.Log))
	r.Handle("/metrics", d.Metrics.Handler())

	return r, nil
}
