package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a customer referenced by pre-orders via CustomerID
type Customer struct {
	CustomerID   string         `gorm:"primaryKey" json:"customer_id"`
	Name         string         `gorm:"not null" json:"name"`
	Phone        string         `gorm:"index" json:"phone"`
	SocialHandle string         `json:"social_handle"`
	City         string         `json:"city"`
	Address      string         `json:"address"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
