package controllers

import (
	"net/http"
	"testing"

	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/models"
	"github.com/stretchr/testify/assert"
)

func setupAdminSetupTest(t *testing.T) {
	setupControllerTestDB(t)
	config.SetConfig(&config.Config{
		GoEnv:         "test",
		AdminSetupKey: "test-setup-key",
	})
}

func TestAdminSetup_WrongKey(t *testing.T) {
	setupAdminSetupTest(t)
	db := config.GetDB()

	db.Create(&models.UserProfile{ID: "auth0|u1", Email: "u1@example.com", Role: models.RoleEmployee})

	router := setupTestRouter()
	router.POST("/admin/setup", AdminSetup)

	w, response := doJSONRequest(t, router, http.MethodPost, "/admin/setup", map[string]interface{}{
		"email":    "u1@example.com",
		"setupKey": "wrong-key",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_SETUP_KEY", errorData["code"])

	// No role change persisted
	var user models.UserProfile
	db.Where("id = ?", "auth0|u1").First(&user)
	assert.Equal(t, models.RoleEmployee, user.Role)
}

func TestAdminSetup_PromotesExistingUser(t *testing.T) {
	setupAdminSetupTest(t)
	db := config.GetDB()

	db.Create(&models.UserProfile{ID: "auth0|u1", Email: "u1@example.com", Role: models.RoleEmployee})

	router := setupTestRouter()
	router.POST("/admin/setup", AdminSetup)

	w, response := doJSONRequest(t, router, http.MethodPost, "/admin/setup", map[string]interface{}{
		"email":    "u1@example.com",
		"setupKey": "test-setup-key",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, response["success"].(bool))

	// Response echoes id, email and the new role
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "auth0|u1", data["id"])
	assert.Equal(t, "u1@example.com", data["email"])
	assert.Equal(t, "admin", data["role"])

	var user models.UserProfile
	db.Where("id = ?", "auth0|u1").First(&user)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestAdminSetup_MissingEmail(t *testing.T) {
	setupAdminSetupTest(t)

	router := setupTestRouter()
	router.POST("/admin/setup", AdminSetup)

	w, response := doJSONRequest(t, router, http.MethodPost, "/admin/setup", map[string]interface{}{
		"setupKey": "test-setup-key",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "MISSING_EMAIL", errorData["code"])
}

func TestAdminSetup_UnknownUser(t *testing.T) {
	setupAdminSetupTest(t)

	router := setupTestRouter()
	router.POST("/admin/setup", AdminSetup)

	w, response := doJSONRequest(t, router, http.MethodPost, "/admin/setup", map[string]interface{}{
		"email":    "ghost@example.com",
		"setupKey": "test-setup-key",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "USER_NOT_FOUND", errorData["code"])
}
