package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment represents a payment recorded against a pre-order. Tally marks
// whether the payment has been reconciled against accounting records.
type Payment struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	PreOrderID   string         `gorm:"index" json:"pre_order_id"`
	Amount       float64        `gorm:"not null" json:"amount"`
	Purpose      string         `gorm:"not null;default:'product_payment'" json:"purpose"` // product_payment, shipping_charge, refund, other
	Method       string         `json:"method"`
	Tally        bool           `gorm:"not null;default:false" json:"tally"`
	ReceiptS3Key *string        `json:"receipt_s3_key"`
	ReceiptURL   *string        `gorm:"-" json:"receipt_url,omitempty"` // computed field, presigned URL for receipt
	PaidAt       *time.Time     `json:"paid_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// Payment purpose values
const (
	PaymentPurposeProduct  = "product_payment"
	PaymentPurposeShipping = "shipping_charge"
	PaymentPurposeRefund   = "refund"
	PaymentPurposeOther    = "other"
)

// ValidPaymentPurpose reports whether p is one of the known purpose values.
func ValidPaymentPurpose(p string) bool {
	switch p {
	case PaymentPurposeProduct, PaymentPurposeShipping, PaymentPurposeRefund, PaymentPurposeOther:
		return true
	}
	return false
}
