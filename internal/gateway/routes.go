package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saransh1220/gallery-backend/internal/gateway/middleware"
	gallery_http "github.com/saransh1220/gallery-backend/internal/modules/gallery/interfaces/http"
)

// RouterConfig holds all the handlers and middleware settings needed for routing
type RouterConfig struct {
	GalleryHandler *gallery_http.GalleryHandler
	AllowedOrigins string
	// Registry backs both the request metrics and the /metrics endpoint
	Registry *prometheus.Registry
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) http.Handler {
	router := NewRouter()

	// Health Check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	router.Handle("/metrics", promhttp.HandlerFor(config.Registry, promhttp.HandlerOpts{Registry: config.Registry}))

	// Gallery Routes
	router.HandleFunc("GET /{$}", config.GalleryHandler.Index)
	router.HandleFunc("GET /api/gallery", config.GalleryHandler.List)
	router.HandleFunc("GET /api/gallery/{folder}", config.GalleryHandler.GetFolder)

	metrics := middleware.NewHTTPMetrics(config.Registry)
	router.Use(
		middleware.RequestID,
		metrics.Middleware,
		func(next http.Handler) http.Handler {
			return middleware.CORSMiddleware(next, config.AllowedOrigins)
		},
	)

	return router.Handler()
}
