package models

import (
	"time"

	"gorm.io/gorm"
)

// Reminder represents a follow-up task shown on the dashboard's Kanban board
type Reminder struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Details   string         `json:"details"`
	Status    string         `gorm:"not null;default:'Pending';index" json:"status"` // Pending, In Progress, Completed
	DueDate   *time.Time     `json:"due_date"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Reminder model
func (Reminder) TableName() string {
	return "reminders"
}

// Reminder Kanban statuses
const (
	ReminderStatusPending    = "Pending"
	ReminderStatusInProgress = "In Progress"
	ReminderStatusCompleted  = "Completed"
)

// ValidReminderStatus reports whether s is one of the Kanban columns.
func ValidReminderStatus(s string) bool {
	switch s {
	case ReminderStatusPending, ReminderStatusInProgress, ReminderStatusCompleted:
		return true
	}
	return false
}
