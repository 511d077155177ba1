package service

import (
	"bytes"
	"fmt"

	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/logger"
	"foodgram-backend/internal/metrics"
	"foodgram-backend/internal/repository"
)

// recipeLink is the add/remove flow shared by favorites and the shopping cart
type recipeLink struct {
	kind      string
	recipes   repository.RecipeRepositoryInterface
	exists    func(userID, recipeID uint) (bool, error)
	create    func(userID, recipeID uint) error
	remove    func(userID, recipeID uint) (bool, error)
	duplicate error
	missing   error
}

func (l *recipeLink) add(recipeID uint, actor auth.Actor) (*RecipeMinifiedResponse, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.ErrCredentialsNotProvided
	}
	recipe, err := l.loadRecipe(recipeID)
	if err != nil {
		return nil, err
	}

	exists, err := l.exists(actor.ID, recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", l.kind, err)
	}
	if exists {
		return nil, l.duplicate
	}
	if err := l.create(actor.ID, recipe.ID); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, l.duplicate
		}
		return nil, fmt.Errorf("failed to add to %s: %w", l.kind, err)
	}

	metrics.RecordAssociation(l.kind, true)
	logger.ForActor(actor).WithFields(map[string]interface{}{
		"recipe_id": recipe.ID,
		"kind":      l.kind,
	}).Info("recipe linked")

	response := MinifiedRecipe(recipe)
	return &response, nil
}

func (l *recipeLink) drop(recipeID uint, actor auth.Actor) error {
	if !actor.IsAuthenticated() {
		return apperrors.ErrCredentialsNotProvided
	}
	recipe, err := l.loadRecipe(recipeID)
	if err != nil {
		return err
	}

	deleted, err := l.remove(actor.ID, recipe.ID)
	if err != nil {
		return fmt.Errorf("failed to remove from %s: %w", l.kind, err)
	}
	if !deleted {
		return apperrors.NewValidationError("recipe", l.missing.Error())
	}

	metrics.RecordAssociation(l.kind, false)
	logger.ForActor(actor).WithFields(map[string]interface{}{
		"recipe_id": recipe.ID,
		"kind":      l.kind,
	}).Info("recipe unlinked")
	return nil
}

func (l *recipeLink) loadRecipe(id uint) (*models.Recipe, error) {
	recipe, err := l.recipes.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

// FavoriteService manages the actor's favorite recipes
type FavoriteService struct {
	link *recipeLink
}

// Ensure FavoriteService implements FavoriteServiceInterface
var _ FavoriteServiceInterface = (*FavoriteService)(nil)

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favorites repository.FavoriteRepositoryInterface, recipes repository.RecipeRepositoryInterface) *FavoriteService {
	return &FavoriteService{link: &recipeLink{
		kind:    metrics.KindFavorite,
		recipes: recipes,
		exists:  favorites.Exists,
		create: func(userID, recipeID uint) error {
			return favorites.Create(&models.Favorite{UserID: userID, RecipeID: recipeID})
		},
		remove:    favorites.Delete,
		duplicate: apperrors.ErrFavoriteExists,
		missing:   apperrors.ErrFavoriteNotFound,
	}}
}

// Add marks a recipe as favorite for actor
func (s *FavoriteService) Add(recipeID uint, actor auth.Actor) (*RecipeMinifiedResponse, error) {
	return s.link.add(recipeID, actor)
}

// Remove unmarks a favorite recipe
func (s *FavoriteService) Remove(recipeID uint, actor auth.Actor) error {
	return s.link.drop(recipeID, actor)
}

// ShoppingCartService manages the actor's shopping cart
type ShoppingCartService struct {
	carts repository.ShoppingCartRepositoryInterface
	link  *recipeLink
}

// Ensure ShoppingCartService implements ShoppingCartServiceInterface
var _ ShoppingCartServiceInterface = (*ShoppingCartService)(nil)

// NewShoppingCartService creates a new shopping cart service
func NewShoppingCartService(carts repository.ShoppingCartRepositoryInterface, recipes repository.RecipeRepositoryInterface) *ShoppingCartService {
	return &ShoppingCartService{
		carts: carts,
		link: &recipeLink{
			kind:    metrics.KindShoppingCart,
			recipes: recipes,
			exists:  carts.Exists,
			create: func(userID, recipeID uint) error {
				return carts.Create(&models.ShoppingCart{UserID: userID, RecipeID: recipeID})
			},
			remove:    carts.Delete,
			duplicate: apperrors.ErrCartItemExists,
			missing:   apperrors.ErrCartItemNotFound,
		},
	}
}

// Add puts a recipe in actor's shopping cart
func (s *ShoppingCartService) Add(recipeID uint, actor auth.Actor) (*RecipeMinifiedResponse, error) {
	return s.link.add(recipeID, actor)
}

// Remove takes a recipe out of actor's shopping cart
func (s *ShoppingCartService) Remove(recipeID uint, actor auth.Actor) error {
	return s.link.drop(recipeID, actor)
}

// ShoppingList renders the summed ingredients of every recipe in actor's
// cart, one "<name> (<unit>) - <total>" line each, sorted by name
func (s *ShoppingCartService) ShoppingList(actor auth.Actor) ([]byte, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.ErrCredentialsNotProvided
	}
	totals, err := s.carts.GetIngredientTotals(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate shopping cart: %w", err)
	}

	var buf bytes.Buffer
	for _, item := range totals {
		fmt.Fprintf(&buf, "%s (%s) - %d\n", item.Name, item.MeasurementUnit, item.Total)
	}
	return buf.Bytes(), nil
}
