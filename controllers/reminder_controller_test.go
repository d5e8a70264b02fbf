package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/preorder-hq/backoffice-api/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateReminder(t *testing.T) {
	db := setupControllerTestDB(t)

	router := setupTestRouter()
	router.POST("/reminders", CreateReminder)

	w, response := doJSONRequest(t, router, http.MethodPost, "/reminders", map[string]interface{}{
		"title":   "Call supplier about PO7",
		"details": "Stock confirmation pending",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Pending", data["status"])

	var count int64
	db.Model(&models.Reminder{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateReminder_MissingTitle(t *testing.T) {
	setupControllerTestDB(t)

	router := setupTestRouter()
	router.POST("/reminders", CreateReminder)

	w, response := doJSONRequest(t, router, http.MethodPost, "/reminders", map[string]interface{}{
		"details": "no title",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errorData["code"])
}

func TestMoveReminder(t *testing.T) {
	db := setupControllerTestDB(t)

	reminder := models.Reminder{Title: "Follow up", Status: models.ReminderStatusPending}
	db.Create(&reminder)

	router := setupTestRouter()
	router.PATCH("/reminders/:id/status", MoveReminder)

	w, response := doJSONRequest(t, router, http.MethodPatch, fmt.Sprintf("/reminders/%d/status", reminder.ID),
		map[string]interface{}{"status": "In Progress"})
	assert.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "In Progress", data["status"])

	var stored models.Reminder
	db.First(&stored, reminder.ID)
	assert.Equal(t, models.ReminderStatusInProgress, stored.Status)
}

func TestMoveReminder_InvalidColumn(t *testing.T) {
	db := setupControllerTestDB(t)

	reminder := models.Reminder{Title: "Follow up", Status: models.ReminderStatusPending}
	db.Create(&reminder)

	router := setupTestRouter()
	router.PATCH("/reminders/:id/status", MoveReminder)

	w, _ := doJSONRequest(t, router, http.MethodPatch, fmt.Sprintf("/reminders/%d/status", reminder.ID),
		map[string]interface{}{"status": "Archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.Reminder
	db.First(&stored, reminder.ID)
	assert.Equal(t, models.ReminderStatusPending, stored.Status)
}

func TestListReminders_FilterByStatus(t *testing.T) {
	db := setupControllerTestDB(t)

	db.Create(&models.Reminder{Title: "A", Status: models.ReminderStatusPending})
	db.Create(&models.Reminder{Title: "B", Status: models.ReminderStatusCompleted})
	db.Create(&models.Reminder{Title: "C", Status: models.ReminderStatusPending})

	router := setupTestRouter()
	router.GET("/reminders", ListReminders)

	w, response := doJSONRequest(t, router, http.MethodGet, "/reminders?status=Pending", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestDeleteReminder(t *testing.T) {
	db := setupControllerTestDB(t)

	reminder := models.Reminder{Title: "Done with this", Status: models.ReminderStatusCompleted}
	db.Create(&reminder)

	router := setupTestRouter()
	router.DELETE("/reminders/:id", DeleteReminder)

	w, _ := doJSONRequest(t, router, http.MethodDelete, fmt.Sprintf("/reminders/%d", reminder.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Reminder{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
