package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultAllowedFolders are the category folders the site queries by default.
var DefaultAllowedFolders = []string{"gallery", "flyers", "electronic", "programming", "design", "art"}

// FolderKey returns the lowercased form of a folder name used for comparisons.
// Lowercasing is per rune, so "straße" and "STRASSE" stay distinct.
func FolderKey(name string) string {
	return cases.Lower(language.Und).String(name)
}

// FolderAllowList is the fixed set of folders accepted by single-folder queries.
type FolderAllowList struct {
	names []string
	keys  map[string]struct{}
}

// NewFolderAllowList lowercases, trims and de-duplicates the given names, keeping their order.
func NewFolderAllowList(names []string) FolderAllowList {
	list := FolderAllowList{keys: make(map[string]struct{}, len(names))}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		key := FolderKey(name)
		if _, seen := list.keys[key]; seen {
			continue
		}
		list.keys[key] = struct{}{}
		list.names = append(list.names, name)
	}
	return list
}

// Contains reports whether name is allowed, ignoring case.
func (l FolderAllowList) Contains(name string) bool {
	_, ok := l.keys[FolderKey(name)]
	return ok
}

// Names returns a copy of the allowed folder names.
func (l FolderAllowList) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}
