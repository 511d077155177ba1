package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"foodgram-backend/internal/api/handlers"
	"foodgram-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("ping without deadline")
	}
	return p.err
}

func healthRouter(db handlers.Pinger) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(db, "1.2.3")
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)
	return httpSuite
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		rec := healthRouter(fakePinger{}).MakeRequest(http.MethodGet, "/health", nil)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.2.3", response.Version)
		assert.Equal(t, "healthy", response.Services["database"])
	})

	t.Run("database down", func(t *testing.T) {
		rec := healthRouter(fakePinger{err: errors.New("dial tcp: refused")}).MakeRequest(http.MethodGet, "/health", nil)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, rec, http.StatusServiceUnavailable, &response)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Services["database"], "refused")
	})
}

func TestReadyAndLive(t *testing.T) {
	down := healthRouter(fakePinger{err: errors.New("timeout")})

	var ready map[string]interface{}
	testutils.AssertJSONResponse(t, down.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &ready)
	assert.Equal(t, false, ready["ready"])

	var live map[string]interface{}
	testutils.AssertJSONResponse(t, down.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &live)
	assert.Equal(t, true, live["alive"])
}
