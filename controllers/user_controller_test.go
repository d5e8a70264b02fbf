package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/models"
	"github.com/preorder-hq/backoffice-api/services"
	"github.com/preorder-hq/backoffice-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

// setupControllerTestDB opens an in-memory database with every model
// migrated and installs it as the global DB
func setupControllerTestDB(t *testing.T) *gorm.DB {
	testutil.RequireTestEnvironment(t)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.UserProfile{},
		&models.Customer{},
		&models.Flight{},
		&models.PreOrder{},
		&models.Payment{},
		&models.Transaction{},
		&models.Reminder{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	return db
}

// failingIdentityService makes every userinfo lookup fail, so profile
// creation exercises its degraded path in tests that don't care about email
type failingIdentityService struct{}

func (failingIdentityService) GetUserInfo(accessToken string) (*services.UserInfo, error) {
	return nil, assert.AnError
}

func doJSONRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		buf = bytes.NewBuffer(raw)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func TestGetMyProfile_LazyCreatesEmployee(t *testing.T) {
	db := setupControllerTestDB(t)
	services.SetIdentityService(failingIdentityService{})

	router := setupTestRouter()
	router.GET("/users/me", testutil.MockAuthMiddleware("auth0|newuser", "tok"), GetMyProfile)

	w, response := doJSONRequest(t, router, http.MethodGet, "/users/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "auth0|newuser", data["id"])
	assert.Equal(t, "employee", data["role"])

	// The lazily created profile is persisted
	var stored models.UserProfile
	assert.NoError(t, db.Where("id = ?", "auth0|newuser").First(&stored).Error)
	assert.Equal(t, models.RoleEmployee, stored.Role)
}

func TestGetMyProfile_NoSession(t *testing.T) {
	setupControllerTestDB(t)
	services.SetIdentityService(failingIdentityService{})

	router := setupTestRouter()
	// No auth middleware: there is no session in the context
	router.GET("/users/me", GetMyProfile)

	w, response := doJSONRequest(t, router, http.MethodGet, "/users/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, response["success"].(bool))
}

func TestUpdateUserRole_NonAdminRefused(t *testing.T) {
	db := setupControllerTestDB(t)
	services.SetIdentityService(failingIdentityService{})

	db.Create(&models.UserProfile{ID: "auth0|emp", Email: "emp@example.com", Role: models.RoleEmployee})
	db.Create(&models.UserProfile{ID: "auth0|target", Email: "target@example.com", Role: models.RoleEmployee})

	router := setupTestRouter()
	router.PUT("/users/:id/role", testutil.MockAuthMiddleware("auth0|emp", "tok"), UpdateUserRole)

	w, response := doJSONRequest(t, router, http.MethodPut, "/users/auth0|target/role",
		map[string]interface{}{"role": "admin"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, response["success"].(bool))
	assert.Equal(t, "Only administrators can update user roles", response["error"])

	// No write happened
	var target models.UserProfile
	db.Where("id = ?", "auth0|target").First(&target)
	assert.Equal(t, models.RoleEmployee, target.Role)
}

func TestUpdateUserRole_AdminSucceeds(t *testing.T) {
	db := setupControllerTestDB(t)
	services.SetIdentityService(failingIdentityService{})

	db.Create(&models.UserProfile{ID: "auth0|admin", Email: "admin@example.com", Role: models.RoleAdmin})
	db.Create(&models.UserProfile{ID: "auth0|target", Email: "target@example.com", Role: models.RoleEmployee})

	router := setupTestRouter()
	router.PUT("/users/:id/role", testutil.MockAuthMiddleware("auth0|admin", "tok"), UpdateUserRole)

	w, response := doJSONRequest(t, router, http.MethodPut, "/users/auth0|target/role",
		map[string]interface{}{"role": "admin"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "admin", data["role"])

	var target models.UserProfile
	db.Where("id = ?", "auth0|target").First(&target)
	assert.Equal(t, models.RoleAdmin, target.Role)
}

func TestUpdateUserRole_InvalidRole(t *testing.T) {
	db := setupControllerTestDB(t)
	services.SetIdentityService(failingIdentityService{})

	db.Create(&models.UserProfile{ID: "auth0|admin", Email: "admin@example.com", Role: models.RoleAdmin})
	db.Create(&models.UserProfile{ID: "auth0|target", Email: "target@example.com", Role: models.RoleEmployee})

	router := setupTestRouter()
	router.PUT("/users/:id/role", testutil.MockAuthMiddleware("auth0|admin", "tok"), UpdateUserRole)

	w, response := doJSONRequest(t, router, http.MethodPut, "/users/auth0|target/role",
		map[string]interface{}{"role": "superuser"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, response["success"].(bool))
}

func TestUpdateUserRole_TargetNotFound(t *testing.T) {
	db := setupControllerTestDB(t)
	services.SetIdentityService(failingIdentityService{})

	db.Create(&models.UserProfile{ID: "auth0|admin", Email: "admin@example.com", Role: models.RoleAdmin})

	router := setupTestRouter()
	router.PUT("/users/:id/role", testutil.MockAuthMiddleware("auth0|admin", "tok"), UpdateUserRole)

	w, response := doJSONRequest(t, router, http.MethodPut, "/users/nobody/role",
		map[string]interface{}{"role": "admin"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "USER_NOT_FOUND", errorData["code"])
}

func TestUpdateMyProfile_ChangesName(t *testing.T) {
	db := setupControllerTestDB(t)
	services.SetIdentityService(failingIdentityService{})

	db.Create(&models.UserProfile{ID: "auth0|emp", Email: "emp@example.com", Name: "Old Name", Role: models.RoleEmployee})

	router := setupTestRouter()
	router.PUT("/users/me", testutil.MockAuthMiddleware("auth0|emp", "tok"), UpdateMyProfile)

	w, response := doJSONRequest(t, router, http.MethodPut, "/users/me",
		map[string]interface{}{"name": "New Name"})

	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "New Name", data["name"])

	var stored models.UserProfile
	db.Where("id = ?", "auth0|emp").First(&stored)
	assert.Equal(t, "New Name", stored.Name)
}

func TestListUsers(t *testing.T) {
	db := setupControllerTestDB(t)
	services.SetIdentityService(failingIdentityService{})

	db.Create(&models.UserProfile{ID: "auth0|a", Email: "a@example.com", Role: models.RoleAdmin})
	db.Create(&models.UserProfile{ID: "auth0|b", Email: "b@example.com", Role: models.RoleEmployee})

	router := setupTestRouter()
	router.GET("/users", ListUsers)

	w, response := doJSONRequest(t, router, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
}
