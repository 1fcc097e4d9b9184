package models

import (
	"time"

	"gorm.io/datatypes"
)

// Lifecycle actions recorded in booking_events.
const (
	EventRegistered  = "registered"
	EventUpdated     = "updated"
	EventCheckedOut  = "checked_out"
	EventReactivated = "reactivated"
	EventDeleted     = "deleted"
)

// BookingEvent is an append-only audit row written whenever a customer record
// changes state. Details holds a small JSON snapshot (room, total bill) taken
// at the time of the action.
type BookingEvent struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CustomerID uint           `gorm:"index;column:customer_id" json:"customerId"`
	UserID     uint           `gorm:"index;column:user_id" json:"userId"`
	Action     string         `gorm:"size:32" json:"action"`
	Details    datatypes.JSON `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}
