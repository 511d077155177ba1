package storage

import (
	"context"
	"fmt"

	"foodgram-backend/internal/config"
	apperrors "foodgram-backend/internal/errors"
)

//go:generate mockgen -source=store.go -destination=../mocks/storage_mocks.go -package=mocks

// ImageStore persists recipe images and returns the URL they are served from
type ImageStore interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// New builds the image store selected by IMAGE_STORAGE
func New(ctx context.Context, cfg *config.Config) (ImageStore, error) {
	switch cfg.ImageStorage {
	case "local":
		return NewLocalStore(cfg.MediaRoot, cfg.MediaURL)
	case "s3":
		store, err := NewS3Store(ctx, S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 store: %w", err)
		}
		return store, nil
	default:
		return nil, apperrors.ErrUnknownImageStorage
	}
}
