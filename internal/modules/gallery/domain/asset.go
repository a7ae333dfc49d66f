package domain

import (
	"context"
)

type ResourceKind string

const (
	KindImage ResourceKind = "image"
	KindVideo ResourceKind = "video"
)

// DefaultUngroupedLabel is the bucket used for assets without a folder.
const DefaultUngroupedLabel = "Sin carpeta"

// RawRecord is a resource as listed by the upstream media provider
type RawRecord struct {
	AssetID      string         `json:"asset_id"`
	PublicID     string         `json:"public_id"`
	Format       string         `json:"format,omitempty"`
	Version      int64          `json:"version,omitempty"`
	ResourceType string         `json:"resource_type,omitempty"`
	CreatedAt    string         `json:"created_at,omitempty"`
	Bytes        *int64         `json:"bytes,omitempty"`
	Width        *int           `json:"width,omitempty"`
	Height       *int           `json:"height,omitempty"`
	AssetFolder  string         `json:"asset_folder,omitempty"`
	DisplayName  string         `json:"display_name,omitempty"`
	URL          string         `json:"url,omitempty"`
	SecureURL    string         `json:"secure_url,omitempty"`
	Context      map[string]any `json:"context,omitempty"`
}

// Asset is the normalized view of one image or video
type Asset struct {
	AssetID     string
	PublicID    string
	Kind        ResourceKind
	Format      string
	Version     int64
	CreatedAt   string
	Bytes       *int64
	Width       *int
	Height      *int
	Folder      string // empty when the upstream has no folder
	DisplayName string
	URL         string
	SecureURL   string
	Context     map[string]any
	Description *string
}

// Gallery is the full grouped snapshot returned by ListAll
type Gallery struct {
	Total           int
	FolderNames     []string
	GroupedByFolder map[string][]Asset
	AllAssets       []Asset
}

// FolderListing is the filtered snapshot returned by ListByFolder
type FolderListing struct {
	Folder    string
	Total     int
	Resources []Asset
}

// ResourceLister is the narrow capability the gallery needs from the upstream provider.
// Implementations: Cloudinary Admin API, S3-compatible buckets.
type ResourceLister interface {
	// ListResources returns at most maxResults resources of the given kind.
	// withContext asks the provider to include custom context metadata.
	ListResources(ctx context.Context, kind ResourceKind, maxResults int, withContext bool) ([]RawRecord, error)
}
