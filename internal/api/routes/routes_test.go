package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodgram-backend/internal/api/middleware"
	"foodgram-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T, cfg *config.Config, limiter *middleware.RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := newEngine(cfg, limiter)
	require.NoError(t, err)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"client_ip": c.ClientIP()})
	})
	return router
}

func ping(router *gin.Engine, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeers(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 1)
	router := testEngine(t, &config.Config{}, limiter)

	require.Equal(t, http.StatusOK, ping(router, "198.51.100.7:4000", "10.0.0.1").Code)

	for _, spoofed := range []string{"10.0.0.2", "10.0.0.3", "203.0.113.9"} {
		rec := ping(router, "198.51.100.7:4000", spoofed)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code, "X-Forwarded-For %s", spoofed)
	}

	assert.Equal(t, http.StatusOK, ping(router, "198.51.100.8:4000", "").Code)
}

func TestClientIPFromTrustedProxy(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 1)
	router := testEngine(t, &config.Config{TrustedProxies: []string{"192.0.2.0/24"}}, limiter)

	rec := ping(router, "192.0.2.10:4000", "203.0.113.5")
	require.Equal(t, http.StatusOK, rec.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "203.0.113.5", response["client_ip"])

	assert.Equal(t, http.StatusTooManyRequests, ping(router, "192.0.2.11:4000", "203.0.113.5").Code)
	assert.Equal(t, http.StatusOK, ping(router, "192.0.2.10:4000", "203.0.113.6").Code)
}

func TestNewEngineRejectsInvalidTrustedProxy(t *testing.T) {
	_, err := newEngine(&config.Config{TrustedProxies: []string{"not-an-ip"}}, nil)
	assert.Error(t, err)
}

func TestSwaggerDocServed(t *testing.T) {
	router := testEngine(t, &config.Config{}, nil)
	registerDocs(router)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "/api", doc["basePath"])
	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/recipes/{id}")
	assert.Contains(t, paths, "/users/{id}/subscribe")
}
