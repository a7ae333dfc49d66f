package application

import (
	"context"

	"github.com/saransh1220/gallery-backend/internal/modules/gallery/domain"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxResults caps each upstream listing call.
const DefaultMaxResults = 500

type GalleryService interface {
	ListAll(ctx context.Context) (*domain.Gallery, error)
	ListByFolder(ctx context.Context, requested string) (*domain.FolderListing, error)
	AllowedFolders() []string
}

// Config holds the service's fixed settings
type Config struct {
	AllowedFolders []string
	MaxResults     int
	UngroupedLabel string
}

type galleryService struct {
	lister     domain.ResourceLister
	allowed    domain.FolderAllowList
	maxResults int
	ungrouped  string
}

func NewGalleryService(lister domain.ResourceLister, cfg Config) GalleryService {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if len(cfg.AllowedFolders) == 0 {
		cfg.AllowedFolders = domain.DefaultAllowedFolders
	}
	if cfg.UngroupedLabel == "" {
		cfg.UngroupedLabel = domain.DefaultUngroupedLabel
	}
	return &galleryService{
		lister:     lister,
		allowed:    domain.NewFolderAllowList(cfg.AllowedFolders),
		maxResults: cfg.MaxResults,
		ungrouped:  cfg.UngroupedLabel,
	}
}

func (s *galleryService) AllowedFolders() []string {
	return s.allowed.Names()
}

func (s *galleryService) ListAll(ctx context.Context) (*domain.Gallery, error) {
	assets, err := s.fetchAssets(ctx)
	if err != nil {
		return nil, err
	}

	names, grouped := groupByFolder(assets, s.ungrouped)
	return &domain.Gallery{
		Total:           len(assets),
		FolderNames:     names,
		GroupedByFolder: grouped,
		AllAssets:       assets,
	}, nil
}

func (s *galleryService) ListByFolder(ctx context.Context, requested string) (*domain.FolderListing, error) {
	if !s.allowed.Contains(requested) {
		return nil, &domain.InvalidFolderError{Folder: requested, Allowed: s.allowed.Names()}
	}

	assets, err := s.fetchAssets(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterByFolder(assets, requested)
	if len(filtered) == 0 {
		return nil, &domain.NotFoundError{Folder: requested, Available: observedFolders(assets)}
	}

	return &domain.FolderListing{
		Folder:    requested,
		Total:     len(filtered),
		Resources: filtered,
	}, nil
}

// fetchAssets lists images and videos concurrently and normalizes them, images first.
// Either call failing fails the whole fetch.
func (s *galleryService) fetchAssets(ctx context.Context) ([]domain.Asset, error) {
	var images, videos []domain.RawRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.lister.ListResources(gctx, domain.KindImage, s.maxResults, true)
		if err != nil {
			return &domain.UpstreamFetchError{Kind: domain.KindImage, Err: err}
		}
		images = records
		return nil
	})
	g.Go(func() error {
		records, err := s.lister.ListResources(gctx, domain.KindVideo, s.maxResults, true)
		if err != nil {
			return &domain.UpstreamFetchError{Kind: domain.KindVideo, Err: err}
		}
		videos = records
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	assets := make([]domain.Asset, 0, len(images)+len(videos))
	for _, r := range images {
		assets = append(assets, normalize(r, domain.KindImage))
	}
	for _, r := range videos {
		assets = append(assets, normalize(r, domain.KindVideo))
	}
	return assets, nil
}

// groupByFolder buckets assets by their raw folder value, case preserved.
func groupByFolder(assets []domain.Asset, ungrouped string) ([]string, map[string][]domain.Asset) {
	names := []string{}
	grouped := make(map[string][]domain.Asset)
	for _, a := range assets {
		folder := a.Folder
		if folder == "" {
			folder = ungrouped
		}
		if _, ok := grouped[folder]; !ok {
			names = append(names, folder)
		}
		grouped[folder] = append(grouped[folder], a)
	}
	return names, grouped
}

func filterByFolder(assets []domain.Asset, requested string) []domain.Asset {
	key := domain.FolderKey(requested)
	var out []domain.Asset
	for _, a := range assets {
		if a.Folder != "" && domain.FolderKey(a.Folder) == key {
			out = append(out, a)
		}
	}
	return out
}

// observedFolders returns the distinct non-empty folders in first-seen order.
func observedFolders(assets []domain.Asset) []string {
	seen := make(map[string]struct{})
	folders := []string{}
	for _, a := range assets {
		if a.Folder == "" {
			continue
		}
		if _, ok := seen[a.Folder]; ok {
			continue
		}
		seen[a.Folder] = struct{}{}
		folders = append(folders, a.Folder)
	}
	return folders
}
