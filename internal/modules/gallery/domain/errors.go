package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFolder = errors.New("folder is not an allowed category")
	ErrFolderEmpty   = errors.New("no assets found in folder")
	ErrUpstreamFetch = errors.New("upstream fetch failed")
)

// InvalidFolderError is returned when a requested folder is outside the allow-list.
type InvalidFolderError struct {
	Folder  string
	Allowed []string
}

func (e *InvalidFolderError) Error() string {
	return fmt.Sprintf("folder %q is not an allowed category folder", e.Folder)
}

func (e *InvalidFolderError) Unwrap() error { return ErrInvalidFolder }

// NotFoundError is returned when an allowed folder holds no assets.
// Available lists the folders that do hold assets.
type NotFoundError struct {
	Folder    string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no assets found in folder %q", e.Folder)
}

func (e *NotFoundError) Unwrap() error { return ErrFolderEmpty }

// UpstreamFetchError wraps a failed listing call to the media provider.
type UpstreamFetchError struct {
	Kind ResourceKind
	Err  error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("list %s resources: %v", e.Kind, e.Err)
}

func (e *UpstreamFetchError) Unwrap() []error { return []error{ErrUpstreamFetch, e.Err} }
