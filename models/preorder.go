package models

import (
	"time"

	"gorm.io/gorm"
)

// PreOrder represents a customer's product request tracked through its
// fulfillment lifecycle. Customer and Flight are referenced by their string
// identifiers and resolved at read time by the enrichment service; the row
// itself stays flat.
type PreOrder struct {
	ID             string         `gorm:"primaryKey" json:"id"`
	CustomerID     string         `gorm:"index" json:"customer_id"`
	FlightID       string         `gorm:"index" json:"flight_id"`
	ProductName    string         `gorm:"not null" json:"product_name"`
	Quantity       int            `gorm:"not null;default:1" json:"quantity"`
	Status         string         `gorm:"not null;default:'pending';index" json:"status"` // pending, ordered, shipped, delivered, cancelled, out_of_stock
	Subtotal       float64        `json:"subtotal"`
	AdvancePayment float64        `json:"advance_payment"`
	DeliveryCharge float64        `json:"delivery_charge"`
	Total          float64        `json:"total"`
	Notes          string         `json:"notes"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the PreOrder model
func (PreOrder) TableName() string {
	return "pre_orders"
}

// Pre-order status values
const (
	PreOrderStatusPending    = "pending"
	PreOrderStatusOrdered    = "ordered"
	PreOrderStatusShipped    = "shipped"
	PreOrderStatusDelivered  = "delivered"
	PreOrderStatusCancelled  = "cancelled"
	PreOrderStatusOutOfStock = "out_of_stock"
)

// ValidPreOrderStatus reports whether s is one of the known status values.
func ValidPreOrderStatus(s string) bool {
	switch s {
	case PreOrderStatusPending, PreOrderStatusOrdered, PreOrderStatusShipped,
		PreOrderStatusDelivered, PreOrderStatusCancelled, PreOrderStatusOutOfStock:
		return true
	}
	return false
}
