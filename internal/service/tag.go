package service

import (
	"fmt"

	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/repository"
)

// TagService exposes the read-only tag catalogue
type TagService struct {
	repo repository.TagRepositoryInterface
}

// Ensure TagService implements TagServiceInterface
var _ TagServiceInterface = (*TagService)(nil)

// NewTagService creates a new tag service
func NewTagService(repo repository.TagRepositoryInterface) *TagService {
	return &TagService{repo: repo}
}

// GetAll lists every tag
func (s *TagService) GetAll() ([]TagResponse, error) {
	tags, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	responses := make([]TagResponse, len(tags))
	for i := range tags {
		responses[i] = tagToResponse(&tags[i])
	}
	return responses, nil
}

// GetByID retrieves a tag by ID
func (s *TagService) GetByID(id uint) (*TagResponse, error) {
	tag, err := s.repo.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	response := tagToResponse(tag)
	return &response, nil
}
