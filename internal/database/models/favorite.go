package models

// Favorite marks a recipe as favorited by a user
type Favorite struct {
	BaseModel
	UserID   uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_user_recipe"`
	RecipeID uint   `json:"recipe_id" gorm:"not null;uniqueIndex:idx_favorite_user_recipe;index"`
	User     User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe   Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Favorite
func (Favorite) TableName() string {
	return "favorites"
}

// ShoppingCart places a recipe in a user's shopping cart
type ShoppingCart struct {
	BaseModel
	UserID   uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_recipe"`
	RecipeID uint   `json:"recipe_id" gorm:"not null;uniqueIndex:idx_cart_user_recipe;index"`
	User     User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe   Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShoppingCart
func (ShoppingCart) TableName() string {
	return "shopping_carts"
}
