//go:build integration
// +build integration

package repository

import (
	"testing"

	"foodgram-backend/internal/database/models"
	"foodgram-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// AssociationRepositoryTestSuite covers favorites, shopping carts and subscriptions
type AssociationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	favorites     *FavoriteRepository
	carts         *ShoppingCartRepository
	subscriptions *SubscriptionRepository

	reader *models.User
	author *models.User
	recipe *models.Recipe
}

func (suite *AssociationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	db := suite.baseTestSuite.DB
	suite.favorites = NewFavoriteRepository(db)
	suite.carts = NewShoppingCartRepository(db)
	suite.subscriptions = NewSubscriptionRepository(db)
}

func (suite *AssociationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AssociationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	db := suite.baseTestSuite.DB

	suite.reader = suite.factories.User.Create()
	suite.author = suite.factories.User.Create()
	suite.Require().NoError(db.Create(suite.reader).Error)
	suite.Require().NoError(db.Create(suite.author).Error)

	suite.recipe = suite.factories.Recipe.Create(suite.author.ID)
	suite.Require().NoError(NewRecipeRepository(db).Create(suite.recipe, nil, nil))
}

func (suite *AssociationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestFavoriteLifecycle adds, rejects a duplicate, then removes a favorite
func (suite *AssociationRepositoryTestSuite) TestFavoriteLifecycle() {
	suite.Require().NoError(suite.favorites.Create(&models.Favorite{UserID: suite.reader.ID, RecipeID: suite.recipe.ID}))

	exists, err := suite.favorites.Exists(suite.reader.ID, suite.recipe.ID)
	suite.Require().NoError(err)
	suite.True(exists)

	err = suite.favorites.Create(&models.Favorite{UserID: suite.reader.ID, RecipeID: suite.recipe.ID})
	suite.True(IsUniqueViolation(err))

	removed, err := suite.favorites.Delete(suite.reader.ID, suite.recipe.ID)
	suite.Require().NoError(err)
	suite.True(removed)

	removed, err = suite.favorites.Delete(suite.reader.ID, suite.recipe.ID)
	suite.Require().NoError(err)
	suite.False(removed)
}

func (suite *AssociationRepositoryTestSuite) TestShoppingCartLifecycle() {
	suite.Require().NoError(suite.carts.Create(&models.ShoppingCart{UserID: suite.reader.ID, RecipeID: suite.recipe.ID}))

	err := suite.carts.Create(&models.ShoppingCart{UserID: suite.reader.ID, RecipeID: suite.recipe.ID})
	suite.True(IsUniqueViolation(err))

	exists, err := suite.carts.Exists(suite.author.ID, suite.recipe.ID)
	suite.Require().NoError(err)
	suite.False(exists)

	removed, err := suite.carts.Delete(suite.reader.ID, suite.recipe.ID)
	suite.Require().NoError(err)
	suite.True(removed)
}

// TestIngredientTotals sums shared ingredients across every recipe in the cart
func (suite *AssociationRepositoryTestSuite) TestIngredientTotals() {
	db := suite.baseTestSuite.DB
	salt := suite.factories.Ingredient.WithName("salt", "g")
	water := suite.factories.Ingredient.WithName("water", "ml")
	suite.Require().NoError(db.Create(salt).Error)
	suite.Require().NoError(db.Create(water).Error)

	recipes := NewRecipeRepository(db)
	soup := suite.factories.Recipe.Create(suite.author.ID)
	suite.Require().NoError(recipes.Create(soup, nil, []models.RecipeIngredient{
		{IngredientID: salt.ID, Amount: 2},
		{IngredientID: water.ID, Amount: 500},
	}))
	bread := suite.factories.Recipe.Create(suite.author.ID)
	suite.Require().NoError(recipes.Create(bread, nil, []models.RecipeIngredient{
		{IngredientID: salt.ID, Amount: 3},
	}))
	notInCart := suite.factories.Recipe.Create(suite.author.ID)
	suite.Require().NoError(recipes.Create(notInCart, nil, []models.RecipeIngredient{
		{IngredientID: water.ID, Amount: 1000},
	}))

	suite.Require().NoError(suite.carts.Create(&models.ShoppingCart{UserID: suite.reader.ID, RecipeID: soup.ID}))
	suite.Require().NoError(suite.carts.Create(&models.ShoppingCart{UserID: suite.reader.ID, RecipeID: bread.ID}))

	totals, err := suite.carts.GetIngredientTotals(suite.reader.ID)

	suite.Require().NoError(err)
	suite.Equal([]IngredientTotal{
		{Name: "salt", MeasurementUnit: "g", Total: 5},
		{Name: "water", MeasurementUnit: "ml", Total: 500},
	}, totals)

	empty, err := suite.carts.GetIngredientTotals(suite.author.ID)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *AssociationRepositoryTestSuite) TestSubscriptions() {
	second := suite.factories.User.WithUsername("aaa-first-by-name")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(second).Error)

	suite.Require().NoError(suite.subscriptions.Create(&models.Subscription{UserID: suite.reader.ID, AuthorID: suite.author.ID}))
	suite.Require().NoError(suite.subscriptions.Create(&models.Subscription{UserID: suite.reader.ID, AuthorID: second.ID}))

	err := suite.subscriptions.Create(&models.Subscription{UserID: suite.reader.ID, AuthorID: suite.author.ID})
	suite.True(IsUniqueViolation(err))

	exists, err := suite.subscriptions.Exists(suite.reader.ID, suite.author.ID)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.subscriptions.Exists(suite.author.ID, suite.reader.ID)
	suite.Require().NoError(err)
	suite.False(exists, "subscriptions are directed")

	authors, total, err := suite.subscriptions.GetAuthors(suite.reader.ID, 1, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(authors, 1)
	suite.Equal(second.ID, authors[0].ID)

	removed, err := suite.subscriptions.Delete(suite.reader.ID, suite.author.ID)
	suite.Require().NoError(err)
	suite.True(removed)
}

func TestAssociationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssociationRepositoryTestSuite))
}
