package models

// Day availability statuses.
const (
	DayAvailable   = "available"
	DayUnavailable = "unavailable"
)

// SlotOption is a single time slot within a day.
type SlotOption struct {
	Time      string `json:"time"` // "HH:MM"
	Available bool   `json:"available"`
}

// DayAvailability is one day of the multi-day availability grid.
type DayAvailability struct {
	Date           string       `json:"date"` // "YYYY-MM-DD"
	Status         string       `json:"status"`
	AvailableSlots int          `json:"availableSlots"`
	TimeSlots      []SlotOption `json:"timeSlots"`
}

// QuickOption is a fast-path (date, time) candidate surfaced before the
// customer opens the full calendar.
type QuickOption struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
