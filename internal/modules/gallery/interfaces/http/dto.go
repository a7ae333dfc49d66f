package http

import (
	"fmt"
	"strings"

	"github.com/saransh1220/gallery-backend/internal/modules/gallery/domain"
)

// AssetResponse is the public shape of one gallery asset
type AssetResponse struct {
	AssetID      string         `json:"asset_id"`
	PublicID     string         `json:"public_id"`
	Format       string         `json:"format,omitempty"`
	Version      int64          `json:"version,omitempty"`
	ResourceType string         `json:"resource_type"`
	CreatedAt    string         `json:"created_at,omitempty"`
	Bytes        *int64         `json:"bytes,omitempty"`
	Width        *int           `json:"width,omitempty"`
	Height       *int           `json:"height,omitempty"`
	AssetFolder  string         `json:"asset_folder"`
	DisplayName  string         `json:"display_name,omitempty"`
	URL          string         `json:"url,omitempty"`
	SecureURL    string         `json:"secure_url,omitempty"`
	Context      map[string]any `json:"context,omitempty"`
	Description  *string        `json:"description"`
}

// GalleryResponse wraps the full grouped listing
type GalleryResponse struct {
	Success         bool                       `json:"success"`
	Total           int                        `json:"total"`
	Folders         []string                   `json:"folders"`
	GroupedByFolder map[string][]AssetResponse `json:"grouped_by_folder"`
	AllResources    []AssetResponse            `json:"all_resources"`
}

// FolderResponse wraps a single-folder listing
type FolderResponse struct {
	Success   bool            `json:"success"`
	Folder    string          `json:"folder"`
	Total     int             `json:"total"`
	Resources []AssetResponse `json:"resources"`
}

// InvalidFolderResponse is returned with 400 when the folder is not allowed
type InvalidFolderResponse struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	AvailableFolders []string `json:"available_folders"`
}

// NotFoundResponse is returned with 404 when an allowed folder has no assets
type NotFoundResponse struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	AvailableFolders []string `json:"available_folders"`
	Hint             string   `json:"hint"`
}

// IndexResponse describes the available endpoints
type IndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

func ToAssetResponse(a domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:      a.AssetID,
		PublicID:     a.PublicID,
		Format:       a.Format,
		Version:      a.Version,
		ResourceType: string(a.Kind),
		CreatedAt:    a.CreatedAt,
		Bytes:        a.Bytes,
		Width:        a.Width,
		Height:       a.Height,
		AssetFolder:  a.Folder,
		DisplayName:  a.DisplayName,
		URL:          a.URL,
		SecureURL:    a.SecureURL,
		Context:      a.Context,
		Description:  a.Description,
	}
}

func toAssetResponses(assets []domain.Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, ToAssetResponse(a))
	}
	return out
}

func ToGalleryResponse(g *domain.Gallery) GalleryResponse {
	grouped := make(map[string][]AssetResponse, len(g.GroupedByFolder))
	for folder, assets := range g.GroupedByFolder {
		grouped[folder] = toAssetResponses(assets)
	}
	folders := g.FolderNames
	if folders == nil {
		folders = []string{}
	}
	return GalleryResponse{
		Success:         true,
		Total:           g.Total,
		Folders:         folders,
		GroupedByFolder: grouped,
		AllResources:    toAssetResponses(g.AllAssets),
	}
}

func ToFolderResponse(l *domain.FolderListing) FolderResponse {
	return FolderResponse{
		Success:   true,
		Folder:    l.Folder,
		Total:     l.Total,
		Resources: toAssetResponses(l.Resources),
	}
}

func newInvalidFolderResponse(e *domain.InvalidFolderError) InvalidFolderResponse {
	return InvalidFolderResponse{
		Message:          fmt.Sprintf("Folder %q is not an allowed category folder.", e.Folder),
		AvailableFolders: nonNil(e.Allowed),
	}
}

func newNotFoundResponse(e *domain.NotFoundError) NotFoundResponse {
	return NotFoundResponse{
		Message:          fmt.Sprintf("No assets found in folder %q", e.Folder),
		AvailableFolders: nonNil(e.Available),
		Hint:             "Folders that currently contain assets: " + strings.Join(e.Available, ", "),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
