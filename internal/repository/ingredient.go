package repository

import (
	"strings"

	"foodgram-backend/internal/database/models"

	"gorm.io/gorm"
)

// IngredientRepository handles database operations for ingredients
type IngredientRepository struct {
	db *gorm.DB
}

// Ensure IngredientRepository implements IngredientRepositoryInterface
var _ IngredientRepositoryInterface = (*IngredientRepository)(nil)

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// GetAll lists ingredients ordered by name, optionally filtered by a
// case-insensitive name prefix
func (r *IngredientRepository) GetAll(namePrefix string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	query := r.db.Model(&models.Ingredient{})
	if prefix := strings.TrimSpace(namePrefix); prefix != "" {
		query = query.Where("name ILIKE ?", escapeLike(prefix)+"%")
	}
	if err := query.Order("name ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetByID retrieves an ingredient by ID
func (r *IngredientRepository) GetByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetByIDs retrieves the ingredients matching ids. Unknown ids are skipped.
func (r *IngredientRepository) GetByIDs(ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
