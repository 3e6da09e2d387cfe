package booking

import (
	"context"
	"time"

	"glowbook/models"
)

// AvailabilityResolver produces the multi-day availability grid for a vendor
// and service duration. The booking flow treats it as a black box.
type AvailabilityResolver interface {
	MultiDayAvailability(ctx context.Context, vendorID string, durationMinutes int, startDate time.Time, daySpan int) ([]models.DayAvailability, error)
}

// maxQuickOptions caps the fast-path shortcut list.
const maxQuickOptions = 3

// QuickOptions flattens the grid into at most three (date, time) candidates:
// days are walked in order, each available day contributes its first two
// available slots, and the walk stops once the cap is reached. An empty
// result means "no quick options" and is valid.
func QuickOptions(days []models.DayAvailability) []models.QuickOption {
	opts := make([]models.QuickOption, 0, maxQuickOptions)
	for _, day := range days {
		if day.Status != models.DayAvailable || day.AvailableSlots == 0 {
			continue
		}
		taken := 0
		for _, slot := range day.TimeSlots {
			if !slot.Available {
				continue
			}
			opts = append(opts, models.QuickOption{Date: day.Date, Time: slot.Time})
			taken++
			if taken == 2 || len(opts) == maxQuickOptions {
				break
			}
		}
		if len(opts) == maxQuickOptions {
			break
		}
	}
	return opts
}
