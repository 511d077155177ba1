package repository

import (
	"foodgram-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeFilter narrows a recipe listing. Zero values disable a filter.
type RecipeFilter struct {
	AuthorID    uint
	TagSlugs    []string
	FavoritedBy uint
	InCartOf    uint
}

// RecipeRepository handles database operations for recipes
type RecipeRepository struct {
	db *gorm.DB
}

// Ensure RecipeRepository implements RecipeRepositoryInterface
var _ RecipeRepositoryInterface = (*RecipeRepository)(nil)

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create stores the recipe with its tag set and ingredient rows in one transaction
func (r *RecipeRepository) Create(recipe *models.Recipe, tagIDs []uint, ingredients []models.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		if err := insertTags(tx, recipe.ID, tagIDs); err != nil {
			return err
		}
		return insertIngredients(tx, recipe.ID, ingredients)
	})
}

// Update writes the scalar fields and, for each non-nil slice, fully replaces
// the tag set or the ingredient rows. Everything runs in one transaction.
func (r *RecipeRepository) Update(recipe *models.Recipe, tagIDs []uint, ingredients []models.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(map[string]interface{}{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
			"image":        recipe.Image,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if tagIDs != nil {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeTag{}).Error; err != nil {
				return err
			}
			if err := insertTags(tx, recipe.ID, tagIDs); err != nil {
				return err
			}
		}

		if ingredients != nil {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
				return err
			}
			if err := insertIngredients(tx, recipe.ID, ingredients); err != nil {
				return err
			}
		}

		return nil
	})
}

// GetByID retrieves a recipe with author, tags and ingredient rows loaded
func (r *RecipeRepository) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := withRelations(r.db).First(&recipe, "recipes.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List returns one page of recipes matching filter, newest first
func (r *RecipeRepository) List(filter RecipeFilter, limit, offset int) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := withRelations(r.filtered(filter)).
		Order("recipes.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// GetByAuthor returns the author's recipes newest first. limit <= 0 returns all.
func (r *RecipeRepository) GetByAuthor(authorID uint, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	query := r.db.Where("author_id = ?", authorID).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// CountByAuthor counts the author's recipes
func (r *RecipeRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a recipe. Ingredient rows, favorites and cart items go with
// it via ON DELETE CASCADE; tag links are cleared explicitly.
func (r *RecipeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Recipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *RecipeRepository) filtered(filter RecipeFilter) *gorm.DB {
	query := r.db.Model(&models.Recipe{})

	if filter.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		tagged := r.db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
		query = query.Where("recipes.id IN (?)", tagged)
	}
	if filter.FavoritedBy != 0 {
		favorited := r.db.Model(&models.Favorite{}).Select("recipe_id").Where("user_id = ?", filter.FavoritedBy)
		query = query.Where("recipes.id IN (?)", favorited)
	}
	if filter.InCartOf != 0 {
		inCart := r.db.Model(&models.ShoppingCart{}).Select("recipe_id").Where("user_id = ?", filter.InCartOf)
		query = query.Where("recipes.id IN (?)", inCart)
	}

	return query
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		}).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.ingredient_id DESC")
		}).
		Preload("Ingredients.Ingredient")
}

func insertTags(tx *gorm.DB, recipeID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]models.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, models.RecipeTag{RecipeID: recipeID, TagID: tagID})
	}
	return tx.Create(&rows).Error
}

func insertIngredients(tx *gorm.DB, recipeID uint, ingredients []models.RecipeIngredient) error {
	if len(ingredients) == 0 {
		return nil
	}
	rows := make([]models.RecipeIngredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		rows = append(rows, models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: ingredient.IngredientID,
			Amount:       ingredient.Amount,
		})
	}
	return tx.Omit(clause.Associations).Create(&rows).Error
}
