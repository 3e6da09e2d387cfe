package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	catalogRepo "glowbook/database/repository/catalog"
	"glowbook/models"
)

// DefaultAvailabilityResolver derives the multi-day grid from the vendor's
// opening hours: slots are generated at a fixed step from open to close, and
// slots already in the past are dropped for the current day.
type DefaultAvailabilityResolver struct {
	Catalog         catalogRepo.Repository
	SlotStepMinutes int
	Now             func() time.Time // defaults to time.Now
}

func (r *DefaultAvailabilityResolver) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// MultiDayAvailability builds one DayAvailability per day of the window.
// Closed days come back with status "unavailable" and no slots.
func (r *DefaultAvailabilityResolver) MultiDayAvailability(ctx context.Context, vendorID string, durationMinutes int, startDate time.Time, daySpan int) ([]models.DayAvailability, error) {
	vendor, err := r.Catalog.FindVendor(vendorID)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}

	step := r.SlotStepMinutes
	if step <= 0 {
		step = 30
	}

	now := r.now()
	days := make([]models.DayAvailability, 0, daySpan)
	for i := 0; i < daySpan; i++ {
		date := startDate.AddDate(0, 0, i)
		days = append(days, r.buildDay(vendor, date, durationMinutes, step, now))
	}
	return days, nil
}

func (r *DefaultAvailabilityResolver) buildDay(vendor *models.Vendor, date time.Time, durationMinutes, step int, now time.Time) models.DayAvailability {
	day := models.DayAvailability{
		Date:      date.Format("2006-01-02"),
		Status:    models.DayUnavailable,
		TimeSlots: []models.SlotOption{},
	}

	hours, ok := vendor.Hours[strings.ToLower(date.Weekday().String())]
	if !ok || hours.Closed {
		return day
	}
	openAt, err := parseClock(hours.Open)
	if err != nil {
		return day
	}
	closeAt, err := parseClock(hours.Close)
	if err != nil {
		return day
	}

	// On the current day, slots that already started are gone.
	minStart := 0
	if sameDay(date, now) {
		minStart = now.Hour()*60 + now.Minute()
	}

	for start := openAt; start+durationMinutes <= closeAt; start += step {
		available := start >= minStart
		day.TimeSlots = append(day.TimeSlots, models.SlotOption{
			Time:      formatClock(start),
			Available: available,
		})
		if available {
			day.AvailableSlots++
		}
	}
	if day.AvailableSlots > 0 {
		day.Status = models.DayAvailable
	}
	return day
}

// parseClock converts "HH:MM" to minutes from midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// formatClock converts minutes from midnight back to "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
