package service

import (
	"context"

	"foodgram-backend/internal/auth"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RecipeServiceInterface defines the interface for recipe service
type RecipeServiceInterface interface {
	Create(ctx context.Context, req *RecipeWriteRequest, actor auth.Actor) (*RecipeResponse, error)
	Update(ctx context.Context, id uint, req *RecipeWriteRequest, actor auth.Actor) (*RecipeResponse, error)
	GetByID(id uint, actor auth.Actor) (*RecipeResponse, error)
	List(query *RecipeListQuery, actor auth.Actor) (*Page[RecipeResponse], error)
	Delete(ctx context.Context, id uint, actor auth.Actor) error
}

// TagServiceInterface defines the interface for tag service
type TagServiceInterface interface {
	GetAll() ([]TagResponse, error)
	GetByID(id uint) (*TagResponse, error)
}

// IngredientServiceInterface defines the interface for ingredient service
type IngredientServiceInterface interface {
	Search(namePrefix string) ([]IngredientResponse, error)
	GetByID(id uint) (*IngredientResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(req *RegisterRequest) (*UserCreatedResponse, error)
	GetByID(id uint, actor auth.Actor) (*UserResponse, error)
	Me(actor auth.Actor) (*UserResponse, error)
	List(page PageRequest, actor auth.Actor) (*Page[UserResponse], error)
	SetPassword(req *SetPasswordRequest, actor auth.Actor) error
	Authenticate(email, password string) (auth.Actor, error)
}

// SubscriptionServiceInterface defines the interface for subscription service
type SubscriptionServiceInterface interface {
	Subscribe(authorID uint, actor auth.Actor, recipesLimit int) (*SubscriptionResponse, error)
	Unsubscribe(authorID uint, actor auth.Actor) error
	List(page PageRequest, actor auth.Actor, recipesLimit int) (*Page[SubscriptionResponse], error)
}

// FavoriteServiceInterface defines the interface for favorite service
type FavoriteServiceInterface interface {
	Add(recipeID uint, actor auth.Actor) (*RecipeMinifiedResponse, error)
	Remove(recipeID uint, actor auth.Actor) error
}

// ShoppingCartServiceInterface defines the interface for shopping cart service
type ShoppingCartServiceInterface interface {
	Add(recipeID uint, actor auth.Actor) (*RecipeMinifiedResponse, error)
	Remove(recipeID uint, actor auth.Actor) error
	ShoppingList(actor auth.Actor) ([]byte, error)
}
