package models

const (
	MinCookingTime = 1
	MaxCookingTime = 32000
	MinAmount      = 1
	MaxAmount      = 32000
)

// Recipe is authored by a User and composed of tagged ingredient rows
type Recipe struct {
	BaseModel
	AuthorID    uint               `json:"author_id" gorm:"not null;index"`
	Author      User               `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Name        string             `json:"name" gorm:"not null;size:200"`
	Image       string             `json:"image" gorm:"not null;size:500"`
	Text        string             `json:"text" gorm:"type:text;not null"`
	CookingTime int                `json:"cooking_time" gorm:"not null;check:chk_recipes_cooking_time,cooking_time BETWEEN 1 AND 32000"`
	Tags        []Tag              `json:"tags" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `json:"ingredients" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeTag is the join row between recipes and tags
type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey"`
	TagID    uint `gorm:"primaryKey"`
}

// TableName returns the table name for RecipeTag
func (RecipeTag) TableName() string {
	return "recipe_tags"
}

// RecipeIngredient records the amount of an ingredient used by a recipe.
// A recipe references each ingredient at most once.
type RecipeIngredient struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	RecipeID     uint       `json:"recipe_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID uint       `json:"ingredient_id" gorm:"not null;uniqueIndex:idx_recipe_ingredient;index"`
	Ingredient   Ingredient `json:"ingredient" gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
	Amount       int        `json:"amount" gorm:"not null;check:chk_recipe_ingredients_amount,amount BETWEEN 1 AND 32000"`
}

// TableName returns the table name for RecipeIngredient
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
