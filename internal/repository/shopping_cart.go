package repository

import (
	"foodgram-backend/internal/database/models"

	"gorm.io/gorm"
)

// IngredientTotal is the summed amount of one ingredient across a shopping cart
type IngredientTotal struct {
	Name            string
	MeasurementUnit string
	Total           int64
}

// ShoppingCartRepository handles database operations for shopping carts
type ShoppingCartRepository struct {
	db *gorm.DB
}

// Ensure ShoppingCartRepository implements ShoppingCartRepositoryInterface
var _ ShoppingCartRepositoryInterface = (*ShoppingCartRepository)(nil)

// NewShoppingCartRepository creates a new shopping cart repository
func NewShoppingCartRepository(db *gorm.DB) *ShoppingCartRepository {
	return &ShoppingCartRepository{db: db}
}

// Create puts a recipe in the cart
func (r *ShoppingCartRepository) Create(item *models.ShoppingCart) error {
	return r.db.Omit("User", "Recipe").Create(item).Error
}

// Delete removes a recipe from the cart and reports whether it was there
func (r *ShoppingCartRepository) Delete(userID, recipeID uint) (bool, error) {
	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.ShoppingCart{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists reports whether recipeID is in the cart of userID
func (r *ShoppingCartRepository) Exists(userID, recipeID uint) (bool, error) {
	return exists(r.db.Model(&models.ShoppingCart{}).Where("user_id = ? AND recipe_id = ?", userID, recipeID))
}

// GetIngredientTotals sums ingredient amounts over every recipe in the cart,
// grouped by name and measurement unit and ordered by name
func (r *ShoppingCartRepository) GetIngredientTotals(userID uint) ([]IngredientTotal, error) {
	var totals []IngredientTotal
	err := r.db.Table("shopping_carts").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = shopping_carts.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC, ingredients.measurement_unit ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}
