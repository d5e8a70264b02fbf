package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondLookupError maps a failed single-record lookup to the right
// envelope: 404 when the record does not exist, 500 for any other database
// failure.
func respondLookupError(c *gin.Context, err error, notFoundCode, notFoundMessage string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    notFoundCode,
				"message": notFoundMessage,
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": fmt.Sprintf("Lookup failed: %s", err.Error()),
		},
	})
}
