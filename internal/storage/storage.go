package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage abstracts where uploaded documents live.
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the file
	GetURL(ctx context.Context, path string) (string, error)

	// GetSignedURL returns a temporary signed URL for private files
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// GetSize returns the size of a file in bytes
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config holds storage configuration
type Config struct {
	Type     string // local
	BasePath string // For local storage
	BaseURL  string // Public URL base
}

// NewStorage creates a storage instance based on configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
