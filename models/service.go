package models

// Service is a bookable base service offered by a vendor.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	VendorID        string  `bson:"vendorId" json:"vendorId"`
	Name            string  `bson:"name" json:"name"`
	Category        string  `bson:"category" json:"category"` // e.g., "hair", "nails", "spa"
	Price           float64 `bson:"price" json:"price"`       // base price in whole DOP
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
	Description     string  `bson:"description,omitempty" json:"description,omitempty"`
}

// Addon is an optional supplementary service with its own price and duration.
type Addon struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Price           float64 `bson:"price" json:"price"`
	DurationMinutes int     `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"` // may be zero
}
