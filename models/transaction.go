package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction represents a money movement tracked by the back office,
// carrying independent confirmation and pay statuses.
type Transaction struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Reference    string         `gorm:"index" json:"reference"`
	Description  string         `gorm:"not null" json:"description"`
	Amount       float64        `gorm:"not null" json:"amount"`
	Confirmation string         `gorm:"not null;default:'pending';index" json:"confirmation"` // pending, confirmed, rejected
	PayStatus    string         `gorm:"not null;default:'unpaid';index" json:"pay_status"`    // unpaid, partial, paid
	TransactedAt *time.Time     `json:"transacted_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// Transaction confirmation statuses
const (
	ConfirmationPending   = "pending"
	ConfirmationConfirmed = "confirmed"
	ConfirmationRejected  = "rejected"
)

// Transaction pay statuses
const (
	PayStatusUnpaid  = "unpaid"
	PayStatusPartial = "partial"
	PayStatusPaid    = "paid"
)

// ValidConfirmation reports whether s is a known confirmation status.
func ValidConfirmation(s string) bool {
	switch s {
	case ConfirmationPending, ConfirmationConfirmed, ConfirmationRejected:
		return true
	}
	return false
}

// ValidPayStatus reports whether s is a known pay status.
func ValidPayStatus(s string) bool {
	switch s {
	case PayStatusUnpaid, PayStatusPartial, PayStatusPaid:
		return true
	}
	return false
}
