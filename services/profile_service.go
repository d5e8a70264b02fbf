package services

import (
	"errors"
	"log"
	"strings"

	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/models"
	"gorm.io/gorm"
)

// ResolveUserProfile maps a session's user ID to its UserProfile row.
//
// If no profile exists yet, one is created with role "employee", using the
// email from the identity provider and a display name taken from provider
// metadata or derived from the email's local part. When the full create
// fails, it is retried with a reduced field set (id, email, role); when that
// fails too, a transient, non-persisted profile is returned so the caller is
// not fully blocked.
//
// A nil result means the identity could not be resolved at all; callers must
// treat nil as unauthenticated and deny access. Errors are logged, never
// returned.
func ResolveUserProfile(userID, accessToken string) *models.UserProfile {
	if userID == "" {
		return nil
	}

	db := config.GetDB()
	if db == nil {
		log.Println("ResolveUserProfile: no database connection")
		return nil
	}

	var profile models.UserProfile
	err := db.Where("id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		// Unexpected lookup error counts as "no profile"
		log.Printf("ResolveUserProfile: profile lookup failed for %s: %v", userID, err)
		return nil
	}

	// First access: create a default employee profile
	email, name := lookupIdentity(accessToken)

	profile = models.UserProfile{
		ID:    userID,
		Email: email,
		Name:  name,
		Role:  models.RoleEmployee,
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Printf("ResolveUserProfile: profile create failed for %s, retrying with reduced fields: %v", userID, err)

		// Retry with the reduced field set
		reduced := models.UserProfile{
			ID:    userID,
			Email: email,
			Role:  models.RoleEmployee,
		}
		if err := db.Select("ID", "Email", "Role").Create(&reduced).Error; err != nil {
			log.Printf("ResolveUserProfile: reduced profile create failed for %s: %v", userID, err)

			// Last resort: a transient profile scoped to this request
			return &models.UserProfile{
				ID:    userID,
				Email: email,
				Name:  name,
				Role:  models.RoleEmployee,
			}
		}
		return &reduced
	}

	return &profile
}

// lookupIdentity fetches email and display name from the identity provider.
// Failures degrade to empty values; profile creation still proceeds.
func lookupIdentity(accessToken string) (email, name string) {
	if accessToken == "" {
		return "", ""
	}

	info, err := GetIdentityService().GetUserInfo(accessToken)
	if err != nil {
		log.Printf("ResolveUserProfile: userinfo lookup failed: %v", err)
		return "", ""
	}

	email = info.Email
	name = info.Name
	if name == "" && email != "" {
		// Fall back to the email's local part
		name = strings.SplitN(email, "@", 2)[0]
	}
	return email, name
}
