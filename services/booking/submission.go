package booking

import (
	"context"
	"time"

	"glowbook/models"

	"github.com/google/uuid"
)

// SubmissionService performs the asynchronous creation of a booking record.
// It returns an explicit result instead of firing callbacks so callers can
// react without side-channel logging.
type SubmissionService interface {
	Submit(ctx context.Context, svc models.Service, user models.User, session models.BookingSession) (*models.Booking, error)
}

// DefaultSubmissionService stands in for the real reservation backend: it
// waits a fixed delay and then mints the booking record.
type DefaultSubmissionService struct {
	Delay time.Duration
}

func (s *DefaultSubmissionService) Submit(ctx context.Context, svc models.Service, user models.User, session models.BookingSession) (*models.Booking, error) {
	if user.ID == "" {
		return nil, NewSubmissionError("a signed-in user is required to confirm a booking")
	}
	if session.SelectedDate == "" || session.SelectedTime == "" {
		return nil, NewSubmissionError("booking date and time must be selected before submission")
	}

	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return &models.Booking{
		ID:            uuid.New().String(),
		ServiceID:     svc.ID,
		VendorID:      session.VendorID,
		UserID:        user.ID,
		Date:          session.SelectedDate,
		Time:          session.SelectedTime,
		Notes:         session.Notes,
		PaymentMethod: session.PaymentMethod,
		Status:        "confirmed",
		CreatedAt:     time.Now(),
	}, nil
}
