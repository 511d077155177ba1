package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore writes images under a media root served at a base URL
type LocalStore struct {
	root    string
	baseURL string
}

// NewLocalStore creates the media root if needed
func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &LocalStore{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save writes data to root/name and returns its URL
func (s *LocalStore) Save(_ context.Context, name string, data []byte, _ string) (string, error) {
	key, target, err := s.pathFor(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return s.baseURL + key, nil
}

// Delete removes the file behind url. URLs outside the store are ignored.
func (s *LocalStore) Delete(_ context.Context, url string) error {
	name, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return nil
	}
	_, target, err := s.pathFor(name)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// pathFor roots name at "/" so it cannot climb out of the media root
func (s *LocalStore) pathFor(name string) (string, string, error) {
	key := path.Clean("/" + name)
	if key == "/" {
		return "", "", fmt.Errorf("invalid image name %q", name)
	}
	return key, filepath.Join(s.root, filepath.FromSlash(key)), nil
}
