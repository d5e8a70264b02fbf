package controllers

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/models"
)

// AdminSetupRequest represents the request body for the bootstrap
// admin-designation endpoint
type AdminSetupRequest struct {
	Email    string `json:"email"`
	SetupKey string `json:"setupKey"`
}

// AdminSetup handles POST /api/v1/admin/setup - promotes the named user to
// admin when the caller supplies the shared setup secret. Guarded only by
// the secret, independent of the role gate, so the first admin can be
// designated before any admin exists.
func AdminSetup(c *gin.Context) {
	var req AdminSetupRequest
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

	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_EMAIL",
				"message": "Email is required",
			},
		})
		return
	}

	setupKey := config.GetConfig().AdminSetupKey
	if subtle.ConstantTimeCompare([]byte(req.SetupKey), []byte(setupKey)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_SETUP_KEY",
				"message": "Invalid setup key",
			},
		})
		return
	}

	db := config.GetDB()
	var user models.UserProfile
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		respondLookupError(c, err, "USER_NOT_FOUND", "No user found with that email")
		return
	}

	if err := db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to promote user: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  models.RoleAdmin,
		},
	})
}
