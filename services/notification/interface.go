package notification

import (
	"context"
	"fmt"

	"glowbook/models"

	"go.uber.org/zap"
)

// NotificationService delivers booking confirmations to the customer.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}

// DefaultNotificationService writes confirmations to the operator log. The
// actual delivery channel (push, email) lives outside this service and picks
// messages up from there.
type DefaultNotificationService struct {
	Logger *zap.Logger
}

func NewDefaultNotificationService(logger *zap.Logger) (*DefaultNotificationService, error) {
	if logger == nil {
		return nil, fmt.Errorf("notification service initialization error: logger is nil")
	}
	return &DefaultNotificationService{Logger: logger}, nil
}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, p models.ConfirmationPayload) error {
	s.Logger.Info("booking confirmation",
		zap.String("bookingId", p.BookingID),
		zap.String("userId", p.UserID),
		zap.String("service", p.ServiceName),
		zap.String("date", p.Date),
		zap.String("time", p.Time),
	)
	return nil
}
