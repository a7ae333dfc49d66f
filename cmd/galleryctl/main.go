package main

import (
	"context"
	"os"

	"github.com/saransh1220/gallery-backend/internal/modules/gallery"
	"github.com/saransh1220/gallery-backend/internal/modules/gallery/application"
	"github.com/saransh1220/gallery-backend/internal/shared/infrastructure/config"
)

func main() {
	root := newRootCmd(buildService, os.Stdout)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildService wires the gallery from the environment, the same way the server does
func buildService(ctx context.Context) (application.GalleryService, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg := config.Load()

	lister, err := gallery.NewResourceLister(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return gallery.NewModuleWithLister(lister, cfg.Gallery).Service(), nil
}
