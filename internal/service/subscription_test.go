package service_test

import (
	"testing"

	"foodgram-backend/internal/auth"
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

// SubscriptionServiceTestSuite defines the test suite for SubscriptionService
type SubscriptionServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	subscriptions *mocks.MockSubscriptionRepositoryInterface
	users         *mocks.MockUserRepositoryInterface
	recipes       *mocks.MockRecipeRepositoryInterface
	svc           *service.SubscriptionService
	follower      auth.Actor
	author        *models.User
}

// SetupTest sets up the test suite
func (suite *SubscriptionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.subscriptions = mocks.NewMockSubscriptionRepositoryInterface(suite.ctrl)
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.recipes = mocks.NewMockRecipeRepositoryInterface(suite.ctrl)

	projector := service.NewProjector(
		suite.subscriptions,
		mocks.NewMockFavoriteRepositoryInterface(suite.ctrl),
		mocks.NewMockShoppingCartRepositoryInterface(suite.ctrl),
		suite.recipes,
	)
	suite.svc = service.NewSubscriptionService(suite.subscriptions, suite.users, projector, 6)
	suite.follower = auth.Actor{ID: 1, Username: "fan"}
	suite.author = &models.User{BaseModel: models.BaseModel{ID: 2}, Username: "chef", Email: "chef@example.com"}
}

// TearDownTest cleans up after each test
func (suite *SubscriptionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SubscriptionServiceTestSuite) TestSubscribe() {
	suite.users.EXPECT().GetByID(uint(2)).Return(suite.author, nil)
	suite.subscriptions.EXPECT().Exists(uint(1), uint(2)).Return(false, nil)
	suite.subscriptions.EXPECT().
		Create(&models.Subscription{UserID: 1, AuthorID: 2}).
		Return(nil)
	// rendering the author afterwards sees the new subscription
	suite.subscriptions.EXPECT().Exists(uint(1), uint(2)).Return(true, nil)
	suite.recipes.EXPECT().GetByAuthor(uint(2), 2).Return([]models.Recipe{
		{BaseModel: models.BaseModel{ID: 9}, Name: "Pie", CookingTime: 60},
		{BaseModel: models.BaseModel{ID: 8}, Name: "Tart", CookingTime: 45},
	}, nil)
	suite.recipes.EXPECT().CountByAuthor(uint(2)).Return(int64(5), nil)

	response, err := suite.svc.Subscribe(2, suite.follower, 2)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), response.IsSubscribed)
	assert.Equal(suite.T(), "chef", response.Username)
	assert.Equal(suite.T(), int64(5), response.RecipesCount)
	require.Len(suite.T(), response.Recipes, 2)
	assert.Equal(suite.T(), "Pie", response.Recipes[0].Name)
}

func (suite *SubscriptionServiceTestSuite) TestSubscribeToSelf() {
	suite.users.EXPECT().GetByID(uint(1)).Return(&models.User{BaseModel: models.BaseModel{ID: 1}}, nil)

	_, err := suite.svc.Subscribe(1, suite.follower, 0)

	verr, ok := apperrors.AsValidation(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "author", verr.Field)
}

func (suite *SubscriptionServiceTestSuite) TestSubscribeTwice() {
	suite.users.EXPECT().GetByID(uint(2)).Return(suite.author, nil)
	suite.subscriptions.EXPECT().Exists(uint(1), uint(2)).Return(true, nil)

	_, err := suite.svc.Subscribe(2, suite.follower, 0)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSubscriptionExists)
}

func (suite *SubscriptionServiceTestSuite) TestSubscribeRaceLost() {
	suite.users.EXPECT().GetByID(uint(2)).Return(suite.author, nil)
	suite.subscriptions.EXPECT().Exists(uint(1), uint(2)).Return(false, nil)
	suite.subscriptions.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.svc.Subscribe(2, suite.follower, 0)

	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *SubscriptionServiceTestSuite) TestSubscribeUnknownAuthor() {
	suite.users.EXPECT().GetByID(uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Subscribe(404, suite.follower, 0)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *SubscriptionServiceTestSuite) TestUnsubscribe() {
	suite.users.EXPECT().GetByID(uint(2)).Return(suite.author, nil)
	suite.subscriptions.EXPECT().Delete(uint(1), uint(2)).Return(true, nil)

	assert.NoError(suite.T(), suite.svc.Unsubscribe(2, suite.follower))
}

func (suite *SubscriptionServiceTestSuite) TestUnsubscribeWithoutSubscription() {
	suite.users.EXPECT().GetByID(uint(2)).Return(suite.author, nil)
	suite.subscriptions.EXPECT().Delete(uint(1), uint(2)).Return(false, nil)

	err := suite.svc.Unsubscribe(2, suite.follower)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SubscriptionServiceTestSuite) TestListRequiresAuthentication() {
	_, err := suite.svc.List(service.PageRequest{}, auth.Anonymous, 0)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

func (suite *SubscriptionServiceTestSuite) TestList() {
	suite.subscriptions.EXPECT().GetAuthors(uint(1), 6, 0).Return([]models.User{*suite.author}, int64(1), nil)
	suite.subscriptions.EXPECT().Exists(uint(1), uint(2)).Return(true, nil)
	suite.recipes.EXPECT().GetByAuthor(uint(2), 0).Return(nil, nil)
	suite.recipes.EXPECT().CountByAuthor(uint(2)).Return(int64(0), nil)

	page, err := suite.svc.List(service.PageRequest{}, suite.follower, -3)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), page.Results, 1)
	assert.True(suite.T(), page.Results[0].IsSubscribed)
	assert.Empty(suite.T(), page.Results[0].Recipes)
	assert.NotNil(suite.T(), page.Results[0].Recipes)
}

// TestSubscriptionServiceTestSuite runs the test suite
func TestSubscriptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}
