package service

import (
	"fmt"

	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/repository"
)

// IngredientService exposes the read-only ingredient catalogue
type IngredientService struct {
	repo repository.IngredientRepositoryInterface
}

// Ensure IngredientService implements IngredientServiceInterface
var _ IngredientServiceInterface = (*IngredientService)(nil)

// NewIngredientService creates a new ingredient service
func NewIngredientService(repo repository.IngredientRepositoryInterface) *IngredientService {
	return &IngredientService{repo: repo}
}

// Search lists ingredients whose name starts with namePrefix, ignoring
// case. An empty prefix lists the whole catalogue.
func (s *IngredientService) Search(namePrefix string) ([]IngredientResponse, error) {
	ingredients, err := s.repo.GetAll(namePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}

	responses := make([]IngredientResponse, len(ingredients))
	for i := range ingredients {
		responses[i] = ingredientToResponse(&ingredients[i])
	}
	return responses, nil
}

// GetByID retrieves an ingredient by ID
func (s *IngredientService) GetByID(id uint) (*IngredientResponse, error) {
	ingredient, err := s.repo.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	response := ingredientToResponse(ingredient)
	return &response, nil
}
