package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/preorder-hq/backoffice-api/services"
)

// RequireAdmin resolves the current session to a UserProfile and aborts the
// request unless the profile's role is "admin". A nil profile is treated as
// unauthenticated, never as an internal error.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := GetUserID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Could not extract user information",
				},
			})
			c.Abort()
			return
		}

		// Best effort: the access token is only needed when the profile has
		// to be created from /userinfo data.
		accessToken, _ := GetAccessToken(c)

		profile := services.ResolveUserProfile(userID, accessToken)
		if profile == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Could not resolve user profile",
				},
			})
			c.Abort()
			return
		}

		if !profile.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Administrator access required",
				},
			})
			c.Abort()
			return
		}

		// Make the resolved profile available to the handler
		c.Set("user_profile", profile)
		c.Next()
	}
}
