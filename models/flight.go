package models

import (
	"time"

	"gorm.io/gorm"
)

// Flight represents a shipment flight that pre-orders travel on.
// ShipmentDate is a plain YYYY-MM-DD string; an empty string means the date
// is not known yet (the enrichment placeholder relies on that).
type Flight struct {
	FlightID     string         `gorm:"primaryKey" json:"flight_id"`
	Name         string         `gorm:"not null" json:"name"`
	ShipmentDate string         `json:"shipment_date"`
	Status       string         `gorm:"not null;default:'scheduled'" json:"status"` // scheduled, in_transit, arrived, delayed
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Flight model
func (Flight) TableName() string {
	return "flights"
}

// Flight status values
const (
	FlightStatusScheduled = "scheduled"
	FlightStatusInTransit = "in_transit"
	FlightStatusArrived   = "arrived"
	FlightStatusDelayed   = "delayed"
)

// ValidFlightStatus reports whether s is one of the known status values.
func ValidFlightStatus(s string) bool {
	switch s {
	case FlightStatusScheduled, FlightStatusInTransit, FlightStatusArrived, FlightStatusDelayed:
		return true
	}
	return false
}
