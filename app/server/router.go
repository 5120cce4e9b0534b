// Package server assembles the HTTP router and runs the listener.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/product-catalog/catalog-api/app/api"
	"github.com/product-catalog/catalog-api/app/categories"
	"github.com/product-catalog/catalog-api/app/metrics"
	"github.com/product-catalog/catalog-api/app/middleware"
	"github.com/product-catalog/catalog-api/app/products"
)

const readinessTimeout = 2 * time.Second

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Dependencies struct {
	Categories     categories.CategoryProvider
	Products       products.ProductProvider
	Store          Pinger
	Metrics        *metrics.Collector
	Logger         *zap.Logger
	AllowedOrigins []string
}

// NewRouter wires middleware, probes and the /api/v1 resources.
func NewRouter(deps Dependencies) http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.Logger(deps.Logger))
	router.Use(deps.Metrics.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	router.Get("/health", healthCheck)
	router.Get("/ready", readinessCheck(deps.Store, deps.Logger))
	router.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/categories", categories.NewCategoryHandler(deps.Categories, deps.Logger).Routes)
		r.Route("/products", products.NewProductHandler(deps.Products, deps.Logger).Routes)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.ErrorResponse(w, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.ErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return router
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	api.OKResponse(w, map[string]string{"status": "healthy"})
}

// readinessCheck answers 503 while the database cannot be reached.
func readinessCheck(store Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.Warn("readiness check failed", zap.Error(err))
			api.JSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		api.OKResponse(w, map[string]string{"status": "ready"})
	}
}
