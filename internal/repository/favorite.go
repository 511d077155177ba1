package repository

import (
	"foodgram-backend/internal/database/models"

	"gorm.io/gorm"
)

// FavoriteRepository handles database operations for favorites
type FavoriteRepository struct {
	db *gorm.DB
}

// Ensure FavoriteRepository implements FavoriteRepositoryInterface
var _ FavoriteRepositoryInterface = (*FavoriteRepository)(nil)

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create stores a favorite
func (r *FavoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Omit("User", "Recipe").Create(favorite).Error
}

// Delete removes a favorite and reports whether one existed
func (r *FavoriteRepository) Delete(userID, recipeID uint) (bool, error) {
	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists reports whether userID favorited recipeID
func (r *FavoriteRepository) Exists(userID, recipeID uint) (bool, error) {
	return exists(r.db.Model(&models.Favorite{}).Where("user_id = ? AND recipe_id = ?", userID, recipeID))
}
