package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodgram-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
	actor  auth.Actor
}

// SetupHTTPTest initializes Gin for testing. Every request runs as the
// actor last passed to AsActor (anonymous by default).
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	suite := &HTTPTestSuite{Router: gin.New()}
	suite.Router.Use(func(c *gin.Context) {
		if suite.actor.IsAuthenticated() {
			auth.SetActor(c, suite.actor)
		}
		c.Next()
	})
	return suite
}

// AsActor makes subsequent requests run as actor
func (suite *HTTPTestSuite) AsActor(actor auth.Actor) *HTTPTestSuite {
	suite.actor = actor
	return suite
}

// MakeRequest encodes body as JSON and executes the request
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}
	return suite.do(method, url, reqBody, body != nil)
}

// MakeRawRequest sends body verbatim as JSON
func (suite *HTTPTestSuite) MakeRawRequest(method, url, body string) *httptest.ResponseRecorder {
	return suite.do(method, url, strings.NewReader(body), true)
}

func (suite *HTTPTestSuite) do(method, url string, body io.Reader, isJSON bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, body)
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// AssertErrorResponse asserts an error response with specific message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &errorResponse)
	require.NoError(t, err)

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}

// AssertFieldError asserts a 400 validation response naming field
func AssertFieldError(t *testing.T, recorder *httptest.ResponseRecorder, field string) {
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResponse))
	assert.Equal(t, field, errorResponse["field"])
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	err := json.Unmarshal(recorder.Body.Bytes(), target)
	require.NoError(t, err)
}
