package handlers_test

import (
	"net/http"
	"testing"

	"foodgram-backend/internal/api/handlers"
	"foodgram-backend/internal/auth"
	apperrors "foodgram-backend/internal/errors"
	"foodgram-backend/internal/mocks"
	"foodgram-backend/internal/service"
	"foodgram-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	users         *mocks.MockUserServiceInterface
	subscriptions *mocks.MockSubscriptionServiceInterface
	httpSuite     *testutils.HTTPTestSuite
	me            auth.Actor
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.users = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.subscriptions = mocks.NewMockSubscriptionServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.me = auth.Actor{ID: 1, Username: "julia", Email: "julia@example.com"}

	handler := handlers.NewUserHandler(suite.users, suite.subscriptions)
	users := suite.httpSuite.Router.Group("/api/users")
	{
		users.GET("", handler.ListUsers)
		users.POST("", handler.Register)
		users.GET("/me", handler.Me)
		users.POST("/set_password", handler.SetPassword)
		users.GET("/subscriptions", handler.ListSubscriptions)
		users.GET("/:id", handler.GetUser)
		users.POST("/:id/subscribe", handler.Subscribe)
		users.DELETE("/:id/subscribe", handler.Unsubscribe)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestRegister() {
	suite.users.EXPECT().
		Register(&service.RegisterRequest{
			Email:     "julia@example.com",
			Username:  "julia",
			FirstName: "Julia",
			LastName:  "Child",
			Password:  "bon-appetit-42",
		}).
		Return(&service.UserCreatedResponse{ID: 1, Email: "julia@example.com", Username: "julia", FirstName: "Julia", LastName: "Child"}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/users", map[string]string{
		"email":      "julia@example.com",
		"username":   "julia",
		"first_name": "Julia",
		"last_name":  "Child",
		"password":   "bon-appetit-42",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &response)
	assert.Equal(suite.T(), float64(1), response["id"])
	assert.NotContains(suite.T(), response, "password")
	assert.NotContains(suite.T(), response, "is_subscribed")
}

func (suite *UserHandlerTestSuite) TestRegisterReservedUsername() {
	suite.users.EXPECT().
		Register(gomock.Any()).
		Return(nil, apperrors.NewValidationError("username", `"me" is reserved`))

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/users", map[string]string{"username": "me"})

	testutils.AssertFieldError(suite.T(), rec, "username")
}

func (suite *UserHandlerTestSuite) TestRegisterDuplicate() {
	suite.users.EXPECT().Register(gomock.Any()).Return(nil, apperrors.ErrUserEmailExists)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/users", map[string]string{"email": "julia@example.com"})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "with this email")
}

func (suite *UserHandlerTestSuite) TestGetUser() {
	suite.users.EXPECT().
		GetByID(uint(2), suite.me).
		Return(&service.UserResponse{ID: 2, Username: "paul", IsSubscribed: true}, nil)

	rec := suite.httpSuite.AsActor(suite.me).MakeRequest(http.MethodGet, "/api/users/2", nil)

	var response service.UserResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	assert.True(suite.T(), response.IsSubscribed)
}

func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	suite.users.EXPECT().GetByID(uint(9), auth.Anonymous).Return(nil, apperrors.ErrUserNotFound)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/users/9", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "user not found")
}

func (suite *UserHandlerTestSuite) TestMe() {
	suite.users.EXPECT().Me(suite.me).Return(&service.UserResponse{ID: 1, Username: "julia"}, nil)

	rec := suite.httpSuite.AsActor(suite.me).MakeRequest(http.MethodGet, "/api/users/me", nil)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *UserHandlerTestSuite) TestMeAnonymous() {
	suite.users.EXPECT().Me(auth.Anonymous).Return(nil, apperrors.ErrCredentialsNotProvided)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/users/me", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusUnauthorized, "")
}

func (suite *UserHandlerTestSuite) TestListUsers() {
	suite.users.EXPECT().
		List(service.PageRequest{Page: 1, Limit: 2}, auth.Anonymous).
		Return(&service.Page[service.UserResponse]{
			Count:      3,
			Results:    []service.UserResponse{{ID: 1}, {ID: 2}},
			PageNumber: 1,
			Limit:      2,
		}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/users?limit=2", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	assert.Contains(suite.T(), response["next"], "/api/users?limit=2&page=2")
	assert.Nil(suite.T(), response["previous"])
}

func (suite *UserHandlerTestSuite) TestSetPassword() {
	suite.users.EXPECT().
		SetPassword(&service.SetPasswordRequest{NewPassword: "new-secret-2", CurrentPassword: "old-secret-1"}, suite.me).
		Return(nil)

	rec := suite.httpSuite.AsActor(suite.me).MakeRequest(http.MethodPost, "/api/users/set_password", map[string]string{
		"new_password":     "new-secret-2",
		"current_password": "old-secret-1",
	})

	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
}

func (suite *UserHandlerTestSuite) TestSetPasswordWrongCurrent() {
	suite.users.EXPECT().
		SetPassword(gomock.Any(), suite.me).
		Return(apperrors.NewValidationError("current_password", "incorrect password"))

	rec := suite.httpSuite.AsActor(suite.me).MakeRequest(http.MethodPost, "/api/users/set_password", map[string]string{
		"new_password":     "new-secret-2",
		"current_password": "guess",
	})

	testutils.AssertFieldError(suite.T(), rec, "current_password")
}

func (suite *UserHandlerTestSuite) TestSubscribe() {
	suite.subscriptions.EXPECT().
		Subscribe(uint(2), suite.me, 3).
		Return(&service.SubscriptionResponse{
			UserResponse: service.UserResponse{ID: 2, Username: "paul", IsSubscribed: true},
			Recipes:      []service.RecipeMinifiedResponse{*minifiedSoup()},
			RecipesCount: 5,
		}, nil)

	rec := suite.httpSuite.AsActor(suite.me).MakeRequest(http.MethodPost, "/api/users/2/subscribe?recipes_limit=3", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &response)
	assert.Equal(suite.T(), "paul", response["username"])
	assert.Equal(suite.T(), float64(5), response["recipes_count"])
	assert.Len(suite.T(), response["recipes"], 1)
}

func (suite *UserHandlerTestSuite) TestSubscribeSelf() {
	suite.subscriptions.EXPECT().
		Subscribe(uint(1), suite.me, 0).
		Return(nil, apperrors.NewValidationError("author", "cannot subscribe to yourself"))

	rec := suite.httpSuite.AsActor(suite.me).MakeRequest(http.MethodPost, "/api/users/1/subscribe", nil)

	testutils.AssertFieldError(suite.T(), rec, "author")
}

func (suite *UserHandlerTestSuite) TestUnsubscribe() {
	suite.subscriptions.EXPECT().Unsubscribe(uint(2), suite.me).Return(nil)

	rec := suite.httpSuite.AsActor(suite.me).MakeRequest(http.MethodDelete, "/api/users/2/subscribe", nil)

	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
}

func (suite *UserHandlerTestSuite) TestUnsubscribeInvalidID() {
	rec := suite.httpSuite.AsActor(suite.me).MakeRequest(http.MethodDelete, "/api/users/paul/subscribe", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "invalid user ID")
}

func (suite *UserHandlerTestSuite) TestListSubscriptions() {
	suite.subscriptions.EXPECT().
		List(service.PageRequest{Page: 1, Limit: 0}, suite.me, 2).
		Return(&service.Page[service.SubscriptionResponse]{
			Count:      1,
			Results:    []service.SubscriptionResponse{{UserResponse: service.UserResponse{ID: 2}}},
			PageNumber: 1,
			Limit:      6,
		}, nil)

	rec := suite.httpSuite.AsActor(suite.me).MakeRequest(http.MethodGet, "/api/users/subscriptions?recipes_limit=2", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	assert.Equal(suite.T(), float64(1), response["count"])
	assert.Nil(suite.T(), response["next"])
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
