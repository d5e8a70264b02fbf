package services

import (
	"fmt"
	"testing"

	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// mockIdentityService returns canned userinfo per access token
type mockIdentityService struct {
	infoByToken map[string]*UserInfo
}

func (m *mockIdentityService) GetUserInfo(accessToken string) (*UserInfo, error) {
	if info, ok := m.infoByToken[accessToken]; ok {
		return info, nil
	}
	return nil, fmt.Errorf("userinfo endpoint returned status 401")
}

func setupProfileTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.UserProfile{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	return db
}

func TestResolveUserProfile_NoSession(t *testing.T) {
	setupProfileTestDB(t)
	SetIdentityService(&mockIdentityService{})

	profile := ResolveUserProfile("", "")
	assert.Nil(t, profile, "an empty user id must resolve to nil")
}

func TestResolveUserProfile_ExistingProfile(t *testing.T) {
	db := setupProfileTestDB(t)
	SetIdentityService(&mockIdentityService{})

	db.Create(&models.UserProfile{
		ID:    "auth0|admin1",
		Email: "boss@example.com",
		Name:  "Boss",
		Role:  models.RoleAdmin,
	})

	profile := ResolveUserProfile("auth0|admin1", "")
	assert.NotNil(t, profile)
	assert.Equal(t, models.RoleAdmin, profile.Role)
	assert.True(t, profile.IsAdmin())
}

func TestResolveUserProfile_LazyEmployeeCreation(t *testing.T) {
	db := setupProfileTestDB(t)
	SetIdentityService(&mockIdentityService{
		infoByToken: map[string]*UserInfo{
			"tok-1": {Sub: "auth0|emp1", Email: "emp@example.com", Name: "Em Ployee"},
		},
	})

	profile := ResolveUserProfile("auth0|emp1", "tok-1")
	assert.NotNil(t, profile)
	assert.Equal(t, models.RoleEmployee, profile.Role)
	assert.Equal(t, "emp@example.com", profile.Email)
	assert.Equal(t, "Em Ployee", profile.Name)
	assert.False(t, profile.IsAdmin())

	// The profile is persisted
	var stored models.UserProfile
	err := db.Where("id = ?", "auth0|emp1").First(&stored).Error
	assert.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, stored.Role)
}

func TestResolveUserProfile_NameFallsBackToEmailLocalPart(t *testing.T) {
	setupProfileTestDB(t)
	SetIdentityService(&mockIdentityService{
		infoByToken: map[string]*UserInfo{
			"tok-2": {Sub: "auth0|emp2", Email: "sadia.rahman@example.com"},
		},
	})

	profile := ResolveUserProfile("auth0|emp2", "tok-2")
	assert.NotNil(t, profile)
	assert.Equal(t, "sadia.rahman", profile.Name)
}

func TestResolveUserProfile_UserinfoFailureStillCreates(t *testing.T) {
	db := setupProfileTestDB(t)
	SetIdentityService(&mockIdentityService{}) // every token fails

	profile := ResolveUserProfile("auth0|emp3", "bad-token")
	assert.NotNil(t, profile, "a userinfo failure must not block profile creation")
	assert.Equal(t, models.RoleEmployee, profile.Role)

	var count int64
	db.Model(&models.UserProfile{}).Where("id = ?", "auth0|emp3").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestResolveUserProfile_TransientFallbackWhenCreateFails(t *testing.T) {
	db := setupProfileTestDB(t)
	SetIdentityService(&mockIdentityService{
		infoByToken: map[string]*UserInfo{
			"tok-4": {Sub: "auth0|emp4", Email: "taken@example.com", Name: "New Hire"},
		},
	})

	// Same email under a different id makes both create attempts violate the
	// unique email index
	db.Create(&models.UserProfile{ID: "auth0|other", Email: "taken@example.com", Role: models.RoleEmployee})

	profile := ResolveUserProfile("auth0|emp4", "tok-4")
	assert.NotNil(t, profile, "caller must not be fully blocked")
	assert.Equal(t, "auth0|emp4", profile.ID)
	assert.Equal(t, models.RoleEmployee, profile.Role)

	// Nothing was persisted for the new id
	var count int64
	db.Model(&models.UserProfile{}).Where("id = ?", "auth0|emp4").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestResolveUserProfile_UnexpectedLookupErrorYieldsNil(t *testing.T) {
	db := setupProfileTestDB(t)
	SetIdentityService(&mockIdentityService{})

	if err := db.Migrator().DropTable(&models.UserProfile{}); err != nil {
		t.Fatalf("Failed to drop user_profiles table: %v", err)
	}

	profile := ResolveUserProfile("auth0|emp5", "")
	assert.Nil(t, profile, "unexpected lookup errors count as no profile")
}
