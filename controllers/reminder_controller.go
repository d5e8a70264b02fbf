package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/preorder-hq/backoffice-api/config"
	"github.com/preorder-hq/backoffice-api/models"
)

// CreateReminderRequest represents the request body for creating a reminder
type CreateReminderRequest struct {
	Title   string     `json:"title" binding:"required"`
	Details string     `json:"details"`
	Status  string     `json:"status"`
	DueDate *time.Time `json:"due_date"`
}

// UpdateReminderRequest represents the request body for updating a reminder
type UpdateReminderRequest struct {
	Title   *string    `json:"title"`
	Details *string    `json:"details"`
	Status  *string    `json:"status"`
	DueDate *time.Time `json:"due_date"`
}

// MoveReminderRequest represents the request body for moving a reminder
// between Kanban columns
type MoveReminderRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListReminders handles GET /api/v1/reminders - optionally filtered by
// Kanban column, ordered by due date
func ListReminders(c *gin.Context) {
	db := config.GetDB()

	query := db.Model(&models.Reminder{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var reminders []models.Reminder
	if err := query.Order("due_date asc, id asc").Find(&reminders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to fetch reminders: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reminders,
	})
}

// CreateReminder handles POST /api/v1/reminders
func CreateReminder(c *gin.Context) {
	var req CreateReminderRequest
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

	status := req.Status
	if status == "" {
		status = models.ReminderStatusPending
	}
	if !models.ValidReminderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid reminder status: " + status,
			},
		})
		return
	}

	reminder := models.Reminder{
		Title:   req.Title,
		Details: req.Details,
		Status:  status,
		DueDate: req.DueDate,
	}

	db := config.GetDB()
	if err := db.Create(&reminder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to create reminder: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    reminder,
	})
}

// UpdateReminder handles PUT /api/v1/reminders/:id
func UpdateReminder(c *gin.Context) {
	db := config.GetDB()

	var reminder models.Reminder
	if err := db.First(&reminder, c.Param("id")).Error; err != nil {
		respondLookupError(c, err, "REMINDER_NOT_FOUND", "Reminder not found")
		return
	}

	var req UpdateReminderRequest
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

	if req.Status != nil && !models.ValidReminderStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid reminder status: " + *req.Status,
			},
		})
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Details != nil {
		updates["details"] = *req.Details
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}

	if len(updates) > 0 {
		if err := db.Model(&reminder).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": fmt.Sprintf("Failed to update reminder: %s", err.Error()),
				},
			})
			return
		}

		if err := db.First(&reminder, reminder.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to reload reminder",
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reminder,
	})
}

// MoveReminder handles PATCH /api/v1/reminders/:id/status - moves a reminder
// to another Kanban column
func MoveReminder(c *gin.Context) {
	db := config.GetDB()

	var reminder models.Reminder
	if err := db.First(&reminder, c.Param("id")).Error; err != nil {
		respondLookupError(c, err, "REMINDER_NOT_FOUND", "Reminder not found")
		return
	}

	var req MoveReminderRequest
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

	if !models.ValidReminderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid reminder status: " + req.Status,
			},
		})
		return
	}

	if err := db.Model(&reminder).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to move reminder: %s", err.Error()),
			},
		})
		return
	}

	reminder.Status = req.Status

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reminder,
	})
}

// DeleteReminder handles DELETE /api/v1/reminders/:id
func DeleteReminder(c *gin.Context) {
	db := config.GetDB()

	var reminder models.Reminder
	if err := db.First(&reminder, c.Param("id")).Error; err != nil {
		respondLookupError(c, err, "REMINDER_NOT_FOUND", "Reminder not found")
		return
	}

	if err := db.Delete(&reminder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": fmt.Sprintf("Failed to delete reminder: %s", err.Error()),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Reminder deleted successfully",
	})
}
