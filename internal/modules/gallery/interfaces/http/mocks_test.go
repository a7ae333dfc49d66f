package http_test

import (
	"context"

	"github.com/saransh1220/gallery-backend/internal/modules/gallery/domain"
	"github.com/stretchr/testify/mock"
)

type mockGalleryService struct{ mock.Mock }

func (m *mockGalleryService) ListAll(ctx context.Context) (*domain.Gallery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gallery), args.Error(1)
}

func (m *mockGalleryService) ListByFolder(ctx context.Context, requested string) (*domain.FolderListing, error) {
	args := m.Called(ctx, requested)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolderListing), args.Error(1)
}

func (m *mockGalleryService) AllowedFolders() []string {
	args := m.Called()
	return args.Get(0).([]string)
}
