package service

import (
	"fmt"

	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/database/models"
)

// UserResponse is the public user projection
type UserResponse struct {
	Email        string `json:"email"`
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// UserCreatedResponse is returned by registration
type UserCreatedResponse struct {
	Email     string `json:"email"`
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

// IngredientResponse represents a catalogue ingredient in API responses
type IngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// RecipeIngredientResponse is an ingredient together with its amount in a recipe
type RecipeIngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeResponse is the full recipe projection
type RecipeResponse struct {
	ID               uint                       `json:"id"`
	Tags             []TagResponse              `json:"tags"`
	Author           UserResponse               `json:"author"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
}

// RecipeMinifiedResponse is the short recipe projection
type RecipeMinifiedResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// SubscriptionResponse is an author seen from a follower
type SubscriptionResponse struct {
	UserResponse
	Recipes      []RecipeMinifiedResponse `json:"recipes"`
	RecipesCount int64                    `json:"recipes_count"`
}

// Projector renders models into actor-dependent responses
type Projector struct {
	subscriptions AssociationLookup
	favorites     AssociationLookup
	carts         AssociationLookup
	counter       RecipeCounter
	lister        AuthorRecipeLister
}

// RecipeReader is what the projector needs from the recipe store
type RecipeReader interface {
	RecipeCounter
	AuthorRecipeLister
}

// NewProjector creates a new Projector
func NewProjector(subscriptions, favorites, carts AssociationLookup, recipes RecipeReader) *Projector {
	return &Projector{
		subscriptions: subscriptions,
		favorites:     favorites,
		carts:         carts,
		counter:       recipes,
		lister:        recipes,
	}
}

// User renders a user for actor
func (p *Projector) User(user *models.User, actor auth.Actor) (UserResponse, error) {
	subscribed, err := IsSubscribed(p.subscriptions, user.ID, actor)
	if err != nil {
		return UserResponse{}, fmt.Errorf("failed to check subscription: %w", err)
	}
	return UserResponse{
		Email:        user.Email,
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: subscribed,
	}, nil
}

// Recipe renders a fully loaded recipe for actor
func (p *Projector) Recipe(recipe *models.Recipe, actor auth.Actor) (*RecipeResponse, error) {
	author, err := p.User(&recipe.Author, actor)
	if err != nil {
		return nil, err
	}
	favorited, err := IsFavorited(p.favorites, recipe.ID, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to check favorite: %w", err)
	}
	inCart, err := IsInShoppingCart(p.carts, recipe.ID, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to check shopping cart: %w", err)
	}

	tags := make([]TagResponse, len(recipe.Tags))
	for i := range recipe.Tags {
		tags[i] = tagToResponse(&recipe.Tags[i])
	}

	ingredients := make([]RecipeIngredientResponse, len(recipe.Ingredients))
	for i, row := range recipe.Ingredients {
		ingredients[i] = RecipeIngredientResponse{
			ID:              row.IngredientID,
			Name:            row.Ingredient.Name,
			MeasurementUnit: row.Ingredient.MeasurementUnit,
			Amount:          row.Amount,
		}
	}

	return &RecipeResponse{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           author,
		Ingredients:      ingredients,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}, nil
}

// Subscription renders an author with their recipes for a follower
func (p *Projector) Subscription(author *models.User, actor auth.Actor, recipesLimit int) (*SubscriptionResponse, error) {
	user, err := p.User(author, actor)
	if err != nil {
		return nil, err
	}
	recipes, err := AuthorRecipes(p.lister, author.ID, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get author recipes: %w", err)
	}
	count, err := RecipesCount(p.counter, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count author recipes: %w", err)
	}

	minified := make([]RecipeMinifiedResponse, len(recipes))
	for i := range recipes {
		minified[i] = MinifiedRecipe(&recipes[i])
	}

	return &SubscriptionResponse{
		UserResponse: user,
		Recipes:      minified,
		RecipesCount: count,
	}, nil
}

// MinifiedRecipe renders the short recipe projection
func MinifiedRecipe(recipe *models.Recipe) RecipeMinifiedResponse {
	return RecipeMinifiedResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}

func tagToResponse(tag *models.Tag) TagResponse {
	return TagResponse{ID: tag.ID, Name: tag.Name, Color: tag.Color, Slug: tag.Slug}
}

func ingredientToResponse(ingredient *models.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}
