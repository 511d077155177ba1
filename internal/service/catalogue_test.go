package service_test

import (
	"errors"
	"testing"

	"foodgram-backend/internal/database/models"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/mocks"
	"foodgram-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CatalogueServiceTestSuite covers the read-only tag and ingredient services
type CatalogueServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	tags              *mocks.MockTagRepositoryInterface
	ingredients       *mocks.MockIngredientRepositoryInterface
	tagService        *service.TagService
	ingredientService *service.IngredientService
}

// SetupTest sets up the test suite
func (suite *CatalogueServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.tags = mocks.NewMockTagRepositoryInterface(suite.ctrl)
	suite.ingredients = mocks.NewMockIngredientRepositoryInterface(suite.ctrl)
	suite.tagService = service.NewTagService(suite.tags)
	suite.ingredientService = service.NewIngredientService(suite.ingredients)
}

// TearDownTest cleans up after each test
func (suite *CatalogueServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogueServiceTestSuite) TestGetAllTags() {
	suite.tags.EXPECT().GetAll().Return([]models.Tag{
		{ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		{ID: 2, Name: "Dinner", Color: "#49B64E", Slug: "dinner"},
	}, nil)

	tags, err := suite.tagService.GetAll()

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []service.TagResponse{
		{ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		{ID: 2, Name: "Dinner", Color: "#49B64E", Slug: "dinner"},
	}, tags)
}

func (suite *CatalogueServiceTestSuite) TestGetAllTagsEmpty() {
	suite.tags.EXPECT().GetAll().Return(nil, nil)

	tags, err := suite.tagService.GetAll()

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), tags)
	assert.Empty(suite.T(), tags)
}

func (suite *CatalogueServiceTestSuite) TestGetTagNotFound() {
	suite.tags.EXPECT().GetByID(uint(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.tagService.GetByID(5)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTagNotFound)
}

func (suite *CatalogueServiceTestSuite) TestSearchIngredients() {
	suite.ingredients.EXPECT().GetAll("Sal").Return([]models.Ingredient{
		{ID: 4, Name: "salmon", MeasurementUnit: "g"},
		{ID: 5, Name: "salt", MeasurementUnit: "g"},
	}, nil)

	ingredients, err := suite.ingredientService.Search("Sal")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), ingredients, 2)
	assert.Equal(suite.T(), service.IngredientResponse{ID: 5, Name: "salt", MeasurementUnit: "g"}, ingredients[1])
}

func (suite *CatalogueServiceTestSuite) TestSearchIngredientsFailure() {
	suite.ingredients.EXPECT().GetAll("").Return(nil, errors.New("timeout"))

	_, err := suite.ingredientService.Search("")

	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to search ingredients")
}

func (suite *CatalogueServiceTestSuite) TestGetIngredient() {
	suite.ingredients.EXPECT().GetByID(uint(5)).Return(&models.Ingredient{ID: 5, Name: "salt", MeasurementUnit: "g"}, nil)
	suite.ingredients.EXPECT().GetByID(uint(6)).Return(nil, gorm.ErrRecordNotFound)

	ingredient, err := suite.ingredientService.GetByID(5)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "salt", ingredient.Name)

	_, err = suite.ingredientService.GetByID(6)
	assert.ErrorIs(suite.T(), err, apperrors.ErrIngredientNotFound)
}

// TestCatalogueServiceTestSuite runs the test suite
func TestCatalogueServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogueServiceTestSuite))
}
