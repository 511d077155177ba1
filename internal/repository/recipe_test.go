//go:build integration
// +build integration

package repository

import (
	"testing"

	"foodgram-backend/internal/database/models"
	"foodgram-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// RecipeRepositoryTestSuite tests the RecipeRepository
type RecipeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RecipeRepository
	factories     *testutils.FactorySet

	author      *models.User
	tags        []*models.Tag
	ingredients []*models.Ingredient
}

func (suite *RecipeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRecipeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *RecipeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds an author, two tags and three ingredients
func (suite *RecipeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	db := suite.baseTestSuite.DB

	suite.author = suite.factories.User.Create()
	suite.Require().NoError(db.Create(suite.author).Error)

	suite.tags = []*models.Tag{
		suite.factories.Tag.WithSlug("Breakfast", "breakfast"),
		suite.factories.Tag.WithSlug("Lunch", "lunch"),
	}
	for _, tag := range suite.tags {
		suite.Require().NoError(db.Create(tag).Error)
	}

	suite.ingredients = []*models.Ingredient{
		suite.factories.Ingredient.WithName("salt", "g"),
		suite.factories.Ingredient.WithName("water", "ml"),
		suite.factories.Ingredient.WithName("rice", "g"),
	}
	for _, ingredient := range suite.ingredients {
		suite.Require().NoError(db.Create(ingredient).Error)
	}
}

func (suite *RecipeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RecipeRepositoryTestSuite) rows(amounts ...int) []models.RecipeIngredient {
	rows := make([]models.RecipeIngredient, 0, len(amounts))
	for i, amount := range amounts {
		rows = append(rows, models.RecipeIngredient{IngredientID: suite.ingredients[i].ID, Amount: amount})
	}
	return rows
}

func (suite *RecipeRepositoryTestSuite) create(tagIDs []uint, ingredients []models.RecipeIngredient) *models.Recipe {
	recipe := suite.factories.Recipe.Create(suite.author.ID)
	suite.Require().NoError(suite.repo.Create(recipe, tagIDs, ingredients))
	return recipe
}

// TestCreateRoundTrip reads back the same tag set and ingredient amounts
func (suite *RecipeRepositoryTestSuite) TestCreateRoundTrip() {
	recipe := suite.create([]uint{suite.tags[0].ID, suite.tags[1].ID}, suite.rows(2, 500))

	stored, err := suite.repo.GetByID(recipe.ID)

	suite.Require().NoError(err)
	suite.Equal(suite.author.ID, stored.Author.ID)
	suite.Require().Len(stored.Tags, 2)
	suite.Equal("breakfast", stored.Tags[0].Slug)
	suite.Require().Len(stored.Ingredients, 2)
	amounts := map[string]int{}
	for _, row := range stored.Ingredients {
		amounts[row.Ingredient.Name] = row.Amount
	}
	suite.Equal(map[string]int{"salt": 2, "water": 500}, amounts)
}

// TestCreateDuplicateIngredient relies on the recipe/ingredient unique index
func (suite *RecipeRepositoryTestSuite) TestCreateDuplicateIngredient() {
	recipe := suite.factories.Recipe.Create(suite.author.ID)
	rows := []models.RecipeIngredient{
		{IngredientID: suite.ingredients[0].ID, Amount: 1},
		{IngredientID: suite.ingredients[0].ID, Amount: 2},
	}

	err := suite.repo.Create(recipe, []uint{suite.tags[0].ID}, rows)

	suite.True(IsUniqueViolation(err))
	var count int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.Recipe{}).Count(&count).Error)
	suite.Zero(count, "the recipe row must be rolled back")
}

func (suite *RecipeRepositoryTestSuite) TestUpdateReplacesIngredients() {
	recipe := suite.create([]uint{suite.tags[0].ID}, suite.rows(2, 500))

	recipe.Name = "Rice"
	replacement := []models.RecipeIngredient{{IngredientID: suite.ingredients[2].ID, Amount: 200}}
	suite.Require().NoError(suite.repo.Update(recipe, nil, replacement))

	stored, err := suite.repo.GetByID(recipe.ID)
	suite.Require().NoError(err)
	suite.Equal("Rice", stored.Name)
	suite.Require().Len(stored.Ingredients, 1)
	suite.Equal("rice", stored.Ingredients[0].Ingredient.Name)
	suite.Require().Len(stored.Tags, 1, "nil tag slice keeps the stored tags")
	suite.Equal(suite.tags[0].ID, stored.Tags[0].ID)
}

func (suite *RecipeRepositoryTestSuite) TestUpdateReplacesTags() {
	recipe := suite.create([]uint{suite.tags[0].ID}, suite.rows(1))

	suite.Require().NoError(suite.repo.Update(recipe, []uint{suite.tags[1].ID}, nil))

	stored, err := suite.repo.GetByID(recipe.ID)
	suite.Require().NoError(err)
	suite.Require().Len(stored.Tags, 1)
	suite.Equal("lunch", stored.Tags[0].Slug)
	suite.Len(stored.Ingredients, 1)
}

func (suite *RecipeRepositoryTestSuite) TestUpdateMissing() {
	recipe := suite.factories.Recipe.Create(suite.author.ID)
	recipe.ID = 99999

	suite.True(IsNotFound(suite.repo.Update(recipe, nil, nil)))
}

func (suite *RecipeRepositoryTestSuite) TestListFilters() {
	other := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(other).Error)

	breakfast := suite.create([]uint{suite.tags[0].ID}, suite.rows(1))
	lunch := suite.create([]uint{suite.tags[1].ID}, suite.rows(1))
	both := suite.create([]uint{suite.tags[0].ID, suite.tags[1].ID}, suite.rows(1))

	favorites := NewFavoriteRepository(suite.baseTestSuite.DB)
	suite.Require().NoError(favorites.Create(&models.Favorite{UserID: other.ID, RecipeID: lunch.ID}))
	carts := NewShoppingCartRepository(suite.baseTestSuite.DB)
	suite.Require().NoError(carts.Create(&models.ShoppingCart{UserID: other.ID, RecipeID: breakfast.ID}))

	all, total, err := suite.repo.List(RecipeFilter{}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Equal([]uint{both.ID, lunch.ID, breakfast.ID}, recipeIDs(all), "newest first")

	tagged, total, err := suite.repo.List(RecipeFilter{TagSlugs: []string{"breakfast"}}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.ElementsMatch([]uint{breakfast.ID, both.ID}, recipeIDs(tagged))

	anyTag, total, err := suite.repo.List(RecipeFilter{TagSlugs: []string{"breakfast", "lunch"}}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total, "a recipe matching two tags is counted once")
	suite.Len(anyTag, 3)

	favorited, _, err := suite.repo.List(RecipeFilter{FavoritedBy: other.ID}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal([]uint{lunch.ID}, recipeIDs(favorited))

	inCart, _, err := suite.repo.List(RecipeFilter{InCartOf: other.ID}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal([]uint{breakfast.ID}, recipeIDs(inCart))

	byOther, total, err := suite.repo.List(RecipeFilter{AuthorID: other.ID}, 10, 0)
	suite.Require().NoError(err)
	suite.Zero(total)
	suite.Empty(byOther)

	page, total, err := suite.repo.List(RecipeFilter{}, 1, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Equal([]uint{lunch.ID}, recipeIDs(page))
}

func (suite *RecipeRepositoryTestSuite) TestAuthorRecipes() {
	first := suite.create([]uint{suite.tags[0].ID}, suite.rows(1))
	second := suite.create([]uint{suite.tags[0].ID}, suite.rows(1))

	count, err := suite.repo.CountByAuthor(suite.author.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	limited, err := suite.repo.GetByAuthor(suite.author.ID, 1)
	suite.Require().NoError(err)
	suite.Equal([]uint{second.ID}, recipeIDs(limited))

	all, err := suite.repo.GetByAuthor(suite.author.ID, 0)
	suite.Require().NoError(err)
	suite.Equal([]uint{second.ID, first.ID}, recipeIDs(all))
}

// TestDeleteCascades removes join rows and associations with the recipe
func (suite *RecipeRepositoryTestSuite) TestDeleteCascades() {
	recipe := suite.create([]uint{suite.tags[0].ID}, suite.rows(1, 2))
	favorites := NewFavoriteRepository(suite.baseTestSuite.DB)
	suite.Require().NoError(favorites.Create(&models.Favorite{UserID: suite.author.ID, RecipeID: recipe.ID}))

	suite.Require().NoError(suite.repo.Delete(recipe.ID))

	db := suite.baseTestSuite.DB
	for _, model := range []interface{}{&models.RecipeIngredient{}, &models.RecipeTag{}, &models.Favorite{}} {
		var count int64
		suite.Require().NoError(db.Model(model).Count(&count).Error)
		suite.Zero(count)
	}
	suite.True(IsNotFound(suite.repo.Delete(recipe.ID)))
}

func recipeIDs(recipes []models.Recipe) []uint {
	ids := make([]uint, 0, len(recipes))
	for _, recipe := range recipes {
		ids = append(ids, recipe.ID)
	}
	return ids
}

func TestRecipeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeRepositoryTestSuite))
}
