package repository

import (
	"foodgram-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	UpdatePassword(id uint, passwordHash string) error
}

// SubscriptionRepositoryInterface defines the interface for subscription repository operations
type SubscriptionRepositoryInterface interface {
	Create(subscription *models.Subscription) error
	Delete(userID, authorID uint) (bool, error)
	Exists(userID, authorID uint) (bool, error)
	GetAuthors(userID uint, limit, offset int) ([]models.User, int64, error)
}

// IngredientRepositoryInterface defines the interface for ingredient repository operations
type IngredientRepositoryInterface interface {
	GetAll(namePrefix string) ([]models.Ingredient, error)
	GetByID(id uint) (*models.Ingredient, error)
	GetByIDs(ids []uint) ([]models.Ingredient, error)
}

// TagRepositoryInterface defines the interface for tag repository operations
type TagRepositoryInterface interface {
	GetAll() ([]models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	GetByIDs(ids []uint) ([]models.Tag, error)
}

// RecipeRepositoryInterface defines the interface for recipe repository operations
type RecipeRepositoryInterface interface {
	Create(recipe *models.Recipe, tagIDs []uint, ingredients []models.RecipeIngredient) error
	Update(recipe *models.Recipe, tagIDs []uint, ingredients []models.RecipeIngredient) error
	GetByID(id uint) (*models.Recipe, error)
	List(filter RecipeFilter, limit, offset int) ([]models.Recipe, int64, error)
	GetByAuthor(authorID uint, limit int) ([]models.Recipe, error)
	CountByAuthor(authorID uint) (int64, error)
	Delete(id uint) error
}

// FavoriteRepositoryInterface defines the interface for favorite repository operations
type FavoriteRepositoryInterface interface {
	Create(favorite *models.Favorite) error
	Delete(userID, recipeID uint) (bool, error)
	Exists(userID, recipeID uint) (bool, error)
}

// ShoppingCartRepositoryInterface defines the interface for shopping cart repository operations
type ShoppingCartRepositoryInterface interface {
	Create(item *models.ShoppingCart) error
	Delete(userID, recipeID uint) (bool, error)
	Exists(userID, recipeID uint) (bool, error)
	GetIngredientTotals(userID uint) ([]IngredientTotal, error)
}
