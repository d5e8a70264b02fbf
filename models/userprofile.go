package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile represents a dashboard user. The primary key is the identity
// provider's subject claim, so a session maps straight to its profile row.
// Role is the only access-control attribute: "admin" or "employee".
type UserProfile struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Name      string         `json:"name"`
	Role      string         `gorm:"not null;default:'employee'" json:"role"` // "admin" or "employee"
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the UserProfile model
func (UserProfile) TableName() string {
	return "user_profiles"
}

// User roles
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// IsAdmin reports whether the profile grants admin access.
func (u *UserProfile) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
