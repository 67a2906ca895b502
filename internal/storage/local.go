package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage keeps files on the local filesystem under basePath.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "./uploads"
	}

	if err := os.MkdirAll(cfg.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: cfg.BasePath,
		baseURL:  cfg.BaseURL,
	}, nil
}

// resolve joins path under basePath and rejects traversal outside it.
func (s *LocalStorage) resolve(path string) (string, error) {
	full := filepath.Join(s.basePath, filepath.Clean("/"+path))
	if !strings.HasPrefix(full, filepath.Clean(s.basePath)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid storage path: %s", path)
	}
	return full, nil
}

func (s *LocalStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Exists(ctx context.Context, path string) (bool, error) {
	fullPath, err := s.resolve(path)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *LocalStorage) GetURL(ctx context.Context, path string) (string, error) {
	if s.baseURL == "" {
		return fmt.Sprintf("/files/%s", path), nil
	}
	return fmt.Sprintf("%s/%s", s.baseURL, path), nil
}

// GetSignedURL falls back to the plain URL; local files are not signed.
func (s *LocalStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.GetURL(ctx, path)
}

func (s *LocalStorage) GetSize(ctx context.Context, path string) (int64, error) {
	fullPath, err := s.resolve(path)
	if err != nil {
		return 0, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return 0, fmt.Errorf("failed to get file info: %w", err)
	}

	return info.Size(), nil
}
