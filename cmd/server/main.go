package main

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/saransh1220/gallery-backend/internal/gateway"
	"github.com/saransh1220/gallery-backend/internal/modules/gallery"
	"github.com/saransh1220/gallery-backend/internal/shared/infrastructure/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg := config.Load()

	handler, err := buildHandler(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize gallery: %v", err)
	}

	log.Printf("Gallery provider: %s, allowed folders: %v", cfg.Gallery.Provider, cfg.Gallery.AllowedFolders)

	server := gateway.NewServer(cfg.Server, handler)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// buildHandler wires the modules and routes for cfg
func buildHandler(ctx context.Context, cfg config.Config) (http.Handler, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	galleryModule, err := gallery.NewModule(ctx, cfg, registry)
	if err != nil {
		return nil, err
	}

	return gateway.SetupRoutes(gateway.RouterConfig{
		GalleryHandler: galleryModule.HTTPHandler(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Registry:       registry,
	}), nil
}
