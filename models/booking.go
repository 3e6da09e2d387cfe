package models

import "time"

// Booking represents a confirmed booking record.
type Booking struct {
	ID            string    `json:"id"`
	ServiceID     string    `json:"serviceId"`
	VendorID      string    `json:"vendorId"`
	UserID        string    `json:"userId"`
	Date          string    `json:"date"` // "YYYY-MM-DD"
	Time          string    `json:"time"` // "HH:MM"
	Notes         string    `json:"notes,omitempty"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"` // always "confirmed" on creation
	CreatedAt     time.Time `json:"createdAt"`
}
