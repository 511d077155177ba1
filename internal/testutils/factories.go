package testutils

import (
	"fmt"
	"sync/atomic"

	"foodgram-backend/internal/database/models"
)

var sequence atomic.Uint64

func next() uint64 {
	return sequence.Add(1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with unique email and username
func (f *UserFactory) Create() *models.User {
	n := next()
	return &models.User{
		Email:        fmt.Sprintf("cook%d@example.com", n),
		Username:     fmt.Sprintf("cook%d", n),
		FirstName:    "Test",
		LastName:     "Cook",
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoOa0lZ6gx4a3uY2p8G8pH0vZ6u8u9a0iS",
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// WithID creates a user with a fixed ID, for service and handler tests
func (f *UserFactory) WithID(id uint) *models.User {
	user := f.Create()
	user.ID = id
	return user
}

// TagFactory provides methods to create test Tag data
type TagFactory struct{}

// NewTagFactory creates a new TagFactory
func NewTagFactory() *TagFactory {
	return &TagFactory{}
}

// Create creates a test Tag with unique color and slug
func (f *TagFactory) Create() *models.Tag {
	n := next()
	return &models.Tag{
		Name:  fmt.Sprintf("Tag %d", n),
		Color: fmt.Sprintf("#%06X", n%0xFFFFFF),
		Slug:  fmt.Sprintf("tag-%d", n),
	}
}

// WithSlug creates a tag with a custom name and slug
func (f *TagFactory) WithSlug(name, slug string) *models.Tag {
	tag := f.Create()
	tag.Name = name
	tag.Slug = slug
	return tag
}

// IngredientFactory provides methods to create test Ingredient data
type IngredientFactory struct{}

// NewIngredientFactory creates a new IngredientFactory
func NewIngredientFactory() *IngredientFactory {
	return &IngredientFactory{}
}

// Create creates a test Ingredient
func (f *IngredientFactory) Create() *models.Ingredient {
	return &models.Ingredient{
		Name:            fmt.Sprintf("ingredient %d", next()),
		MeasurementUnit: "g",
	}
}

// WithName creates an ingredient with a custom name and unit
func (f *IngredientFactory) WithName(name, unit string) *models.Ingredient {
	return &models.Ingredient{Name: name, MeasurementUnit: unit}
}

// RecipeFactory provides methods to create test Recipe data
type RecipeFactory struct{}

// NewRecipeFactory creates a new RecipeFactory
func NewRecipeFactory() *RecipeFactory {
	return &RecipeFactory{}
}

// Create creates a test Recipe owned by authorID
func (f *RecipeFactory) Create(authorID uint) *models.Recipe {
	return &models.Recipe{
		AuthorID:    authorID,
		Name:        fmt.Sprintf("Recipe %d", next()),
		Image:       "/media/recipes/test.png",
		Text:        "Mix everything and cook.",
		CookingTime: 30,
	}
}

// FactorySet groups all factories
type FactorySet struct {
	User       *UserFactory
	Tag        *TagFactory
	Ingredient *IngredientFactory
	Recipe     *RecipeFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Tag:        NewTagFactory(),
		Ingredient: NewIngredientFactory(),
		Recipe:     NewRecipeFactory(),
	}
}
