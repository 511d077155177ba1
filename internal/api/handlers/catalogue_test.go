package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"foodgram-backend/internal/api/handlers"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/mocks"
	"foodgram-backend/internal/service"
	"foodgram-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CatalogueHandlerTestSuite covers the read-only tag and ingredient endpoints
type CatalogueHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	tags        *mocks.MockTagServiceInterface
	ingredients *mocks.MockIngredientServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *CatalogueHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.tags = mocks.NewMockTagServiceInterface(suite.ctrl)
	suite.ingredients = mocks.NewMockIngredientServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	tagHandler := handlers.NewTagHandler(suite.tags)
	ingredientHandler := handlers.NewIngredientHandler(suite.ingredients)
	api := suite.httpSuite.Router.Group("/api")
	{
		api.GET("/tags", tagHandler.ListTags)
		api.GET("/tags/:id", tagHandler.GetTag)
		api.GET("/ingredients", ingredientHandler.ListIngredients)
		api.GET("/ingredients/:id", ingredientHandler.GetIngredient)
	}
}

func (suite *CatalogueHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListTagsUnpaginated expects a bare JSON array
func (suite *CatalogueHandlerTestSuite) TestListTagsUnpaginated() {
	suite.tags.EXPECT().GetAll().Return([]service.TagResponse{
		{ID: 1, Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		{ID: 2, Name: "Lunch", Color: "#49B64E", Slug: "lunch"},
	}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/tags", nil)

	var response []service.TagResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	assert.Len(suite.T(), response, 2)
	assert.Equal(suite.T(), "breakfast", response[0].Slug)
}

func (suite *CatalogueHandlerTestSuite) TestGetTagNotFound() {
	suite.tags.EXPECT().GetByID(uint(7)).Return(nil, apperrors.ErrTagNotFound)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/tags/7", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "tag not found")
}

func (suite *CatalogueHandlerTestSuite) TestGetTagInvalidID() {
	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/tags/lunch", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "invalid tag ID")
}

func (suite *CatalogueHandlerTestSuite) TestSearchIngredients() {
	suite.ingredients.EXPECT().Search("sa").Return([]service.IngredientResponse{
		{ID: 5, Name: "salt", MeasurementUnit: "g"},
	}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/ingredients?name=sa", nil)

	var response []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	assert.Equal(suite.T(), []map[string]interface{}{
		{"id": float64(5), "name": "salt", "measurement_unit": "g"},
	}, response)
}

func (suite *CatalogueHandlerTestSuite) TestSearchIngredientsEmpty() {
	suite.ingredients.EXPECT().Search("").Return([]service.IngredientResponse{}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/ingredients", nil)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), "[]", rec.Body.String())
}

func (suite *CatalogueHandlerTestSuite) TestGetIngredient() {
	suite.ingredients.EXPECT().GetByID(uint(5)).Return(&service.IngredientResponse{ID: 5, Name: "salt", MeasurementUnit: "g"}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/ingredients/5", nil)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *CatalogueHandlerTestSuite) TestGetIngredientFailure() {
	suite.ingredients.EXPECT().GetByID(uint(5)).Return(nil, errors.New("connection reset"))

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/ingredients/5", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusInternalServerError, "internal server error")
}

func TestCatalogueHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogueHandlerTestSuite))
}
