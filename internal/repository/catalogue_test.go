//go:build integration
// +build integration

package repository

import (
	"testing"

	"foodgram-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// CatalogueRepositoryTestSuite covers the tag and ingredient repositories
type CatalogueRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	tags          *TagRepository
	ingredients   *IngredientRepository
}

func (suite *CatalogueRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.tags = NewTagRepository(suite.baseTestSuite.DB)
	suite.ingredients = NewIngredientRepository(suite.baseTestSuite.DB)
}

func (suite *CatalogueRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *CatalogueRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *CatalogueRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CatalogueRepositoryTestSuite) TestTags() {
	db := suite.baseTestSuite.DB
	lunch := suite.factories.Tag.WithSlug("Lunch", "lunch")
	breakfast := suite.factories.Tag.WithSlug("Breakfast", "breakfast")
	suite.Require().NoError(db.Create(lunch).Error)
	suite.Require().NoError(db.Create(breakfast).Error)

	all, err := suite.tags.GetAll()
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("Breakfast", all[0].Name)

	found, err := suite.tags.GetByIDs([]uint{lunch.ID, 99999})
	suite.Require().NoError(err)
	suite.Require().Len(found, 1, "unknown ids are skipped")
	suite.Equal(lunch.ID, found[0].ID)

	_, err = suite.tags.GetByID(99999)
	suite.True(IsNotFound(err))

	duplicate := suite.factories.Tag.WithSlug("Another lunch", "lunch")
	suite.True(IsUniqueViolation(db.Create(duplicate).Error))
}

// TestIngredientSearch matches a case-insensitive prefix only
func (suite *CatalogueRepositoryTestSuite) TestIngredientSearch() {
	db := suite.baseTestSuite.DB
	for _, ingredient := range []struct{ name, unit string }{
		{"Salt", "g"},
		{"salted butter", "g"},
		{"sea salt", "g"},
		{"100% juice", "ml"},
	} {
		suite.Require().NoError(db.Create(suite.factories.Ingredient.WithName(ingredient.name, ingredient.unit)).Error)
	}

	matches, err := suite.ingredients.GetAll("sal")
	suite.Require().NoError(err)
	suite.Require().Len(matches, 2)
	suite.Equal("Salt", matches[0].Name)
	suite.Equal("salted butter", matches[1].Name)

	all, err := suite.ingredients.GetAll("  ")
	suite.Require().NoError(err)
	suite.Len(all, 4)

	literal, err := suite.ingredients.GetAll("100%")
	suite.Require().NoError(err)
	suite.Len(literal, 1)

	wildcard, err := suite.ingredients.GetAll("%")
	suite.Require().NoError(err)
	suite.Empty(wildcard, "wildcards in the prefix are literal")
}

func (suite *CatalogueRepositoryTestSuite) TestIngredientNameUnitUnique() {
	db := suite.baseTestSuite.DB
	suite.Require().NoError(db.Create(suite.factories.Ingredient.WithName("salt", "g")).Error)
	suite.Require().NoError(db.Create(suite.factories.Ingredient.WithName("salt", "tsp")).Error)

	err := db.Create(suite.factories.Ingredient.WithName("salt", "g")).Error
	suite.True(IsUniqueViolation(err))
}

func TestCatalogueRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogueRepositoryTestSuite))
}
