package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/middleware"
	"github.com/preorder-hq/backoffice-api/models"
	"github.com/preorder-hq/backoffice-api/services"
)

// UpdateMyProfileRequest represents the request body for updating the
// caller's own profile. Role is deliberately absent: a user may not change
// their own role.
type UpdateMyProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateUserRoleRequest represents the request body for an admin changing
// another user's role
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// currentProfile resolves the calling session to a UserProfile, or nil.
func currentProfile(c *gin.Context) *models.UserProfile {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return nil
	}
	accessToken, _ := middleware.GetAccessToken(c)
	return services.ResolveUserProfile(userID, accessToken)
}

// GetMyProfile handles GET /api/v1/users/me - resolves the current session
// to its profile, creating a default employee profile on first access
func GetMyProfile(c *gin.Context) {
	profile := currentProfile(c)
	if profile == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not resolve user profile",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}

// UpdateMyProfile handles PUT /api/v1/users/me - updates the caller's
// display name
func UpdateMyProfile(c *gin.Context) {
	profile := currentProfile(c)
	if profile == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not resolve user profile",
			},
		})
		return
	}

	var req UpdateMyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()
	if err := db.Model(&models.UserProfile{}).Where("id = ?", profile.ID).Update("name", req.Name).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to update profile: %s", err.Error()),
			},
		})
		return
	}

	profile.Name = req.Name

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}

// ListUsers handles GET /api/v1/users - admin-only listing of all profiles.
// Routed behind middleware.RequireAdmin.
func ListUsers(c *gin.Context) {
	db := config.GetDB()

	var users []models.UserProfile
	if err := db.Order("created_at asc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to fetch users: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
	})
}

// UpdateUserRole handles PUT /api/v1/users/:id/role - admins may change any
// user's role. The role check lives here rather than in route middleware so
// the refusal shape matches what the dashboard expects.
func UpdateUserRole(c *gin.Context) {
	caller := currentProfile(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not resolve user profile",
			},
		})
		return
	}

	if !caller.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Only administrators can update user roles",
		})
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if req.Role != models.RoleAdmin && req.Role != models.RoleEmployee {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Role must be \"admin\" or \"employee\"",
			},
		})
		return
	}

	db := config.GetDB()
	var target models.UserProfile
	if err := db.Where("id = ?", c.Param("id")).First(&target).Error; err != nil {
		respondLookupError(c, err, "USER_NOT_FOUND", "User not found")
		return
	}

	if err := db.Model(&target).Update("role", req.Role).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to update role: %s", err.Error()),
			},
		})
		return
	}

	target.Role = req.Role

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    target,
	})
}
