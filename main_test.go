package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preorder-hq/backoffice-api/config"
	"github.com/stretchr/testify/assert"
)

func testRouterConfig() *config.Config {
	return &config.Config{
		GoEnv:         "test",
		Port:          "8080",
		Auth0Domain:   "test-tenant.auth0.com",
		Auth0Audience: "https://backoffice.preorder-hq.com/api",
		CORSOrigin:    "http://localhost:3000",
		AdminSetupKey: config.DefaultAdminSetupKey,
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(testRouterConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))
	assert.Equal(t, "Pre-Order Back-Office API is running", response["message"])
}

func TestProtectedRouteRejectsMissingToken(t *testing.T) {
	router := setupRouter(testRouterConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/pre-orders", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response["success"].(bool))
}

func TestAdminSetupIsReachableWithoutToken(t *testing.T) {
	router := setupRouter(testRouterConfig())

	// An empty body fails validation, not authentication: the endpoint sits
	// outside the JWT group
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/admin/setup", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSHeaders(t *testing.T) {
	router := setupRouter(testRouterConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
