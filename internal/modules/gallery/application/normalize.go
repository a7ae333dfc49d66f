package application

import "github.com/saransh1220/gallery-backend/internal/modules/gallery/domain"

// descriptionPath is where the provider keeps the human-written caption.
var descriptionPath = []string{"custom", "alt"}

// normalize maps an upstream record onto an Asset. kind comes from the listing
// call that produced the record and overrides whatever the upstream reported.
func normalize(r domain.RawRecord, kind domain.ResourceKind) domain.Asset {
	asset := domain.Asset{
		AssetID:     r.AssetID,
		PublicID:    r.PublicID,
		Kind:        kind,
		Format:      r.Format,
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		Bytes:       r.Bytes,
		Width:       r.Width,
		Height:      r.Height,
		Folder:      r.AssetFolder,
		DisplayName: r.DisplayName,
		URL:         r.URL,
		SecureURL:   r.SecureURL,
		Context:     r.Context,
	}
	if desc, ok := lookupString(r.Context, descriptionPath...); ok {
		asset.Description = &desc
	}
	return asset
}

// lookupString walks nested maps along path and returns a non-empty string leaf.
// Any missing or mistyped step yields ok == false.
func lookupString(m map[string]any, path ...string) (string, bool) {
	if m == nil || len(path) == 0 {
		return "", false
	}
	current := m
	for _, key := range path[:len(path)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	value, ok := current[path[len(path)-1]].(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
