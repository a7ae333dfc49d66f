package gallery

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/saransh1220/gallery-backend/internal/modules/gallery/application"
	"github.com/saransh1220/gallery-backend/internal/modules/gallery/domain"
	"github.com/saransh1220/gallery-backend/internal/modules/gallery/infrastructure/cloudinary"
	"github.com/saransh1220/gallery-backend/internal/modules/gallery/infrastructure/observability"
	"github.com/saransh1220/gallery-backend/internal/modules/gallery/infrastructure/s3"
	galleryHttp "github.com/saransh1220/gallery-backend/internal/modules/gallery/interfaces/http"
	"github.com/saransh1220/gallery-backend/internal/shared/infrastructure/config"
)

// Module represents the Gallery module
type Module struct {
	lister  domain.ResourceLister
	service application.GalleryService
	handler *galleryHttp.GalleryHandler
}

// NewModule picks the configured media provider and wires the gallery on top of it.
// Upstream metrics are registered on reg.
func NewModule(ctx context.Context, cfg config.Config, reg prometheus.Registerer) (*Module, error) {
	lister, err := NewResourceLister(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewModuleWithLister(observability.NewInstrumentedLister(lister, cfg.Gallery.Provider, reg), cfg.Gallery), nil
}

// NewModuleWithLister wires the gallery over an already built lister
func NewModuleWithLister(lister domain.ResourceLister, cfg config.GalleryConfig) *Module {
	service := application.NewGalleryService(lister, application.Config{
		AllowedFolders: cfg.AllowedFolders,
		MaxResults:     cfg.MaxResults,
		UngroupedLabel: cfg.UngroupedLabel,
	})

	return &Module{
		lister:  lister,
		service: service,
		handler: galleryHttp.NewGalleryHandler(service),
	}
}

// NewResourceLister builds the upstream client named by cfg.Gallery.Provider
func NewResourceLister(ctx context.Context, cfg config.Config) (domain.ResourceLister, error) {
	switch cfg.Gallery.Provider {
	case config.ProviderCloudinary, "":
		client, err := cloudinary.NewClient(cloudinary.Config{
			URL:        cfg.Cloudinary.URL,
			CloudName:  cfg.Cloudinary.CloudName,
			APIKey:     cfg.Cloudinary.APIKey,
			APISecret:  cfg.Cloudinary.APISecret,
			APIBaseURL: cfg.Cloudinary.APIBaseURL,
			Timeout:    cfg.Cloudinary.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("cloudinary provider: %w", err)
		}
		return client, nil
	case config.ProviderS3:
		lister, err := s3.NewS3Lister(ctx, s3.S3Config{
			BucketName:     cfg.S3.Bucket,
			Region:         cfg.S3.Region,
			Endpoint:       cfg.S3.Endpoint,
			PublicEndpoint: cfg.S3.PublicEndpoint,
			AccessKey:      cfg.S3.AccessKey,
			SecretKey:      cfg.S3.SecretKey,
			UseSSL:         cfg.S3.UseSSL,
			Prefix:         cfg.S3.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 provider: %w", err)
		}
		return lister, nil
	default:
		return nil, fmt.Errorf("unknown gallery provider %q", cfg.Gallery.Provider)
	}
}

// Lister returns the (instrumented) upstream lister
func (m *Module) Lister() domain.ResourceLister {
	return m.lister
}

// Service returns the gallery service
func (m *Module) Service() application.GalleryService {
	return m.service
}

// HTTPHandler returns the HTTP handler
func (m *Module) HTTPHandler() *galleryHttp.GalleryHandler {
	return m.handler
}
