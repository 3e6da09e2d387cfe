package booking

import (
	"context"
	"fmt"
	"time"

	"glowbook/models"
	"glowbook/services/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OpenSession starts a new reservation attempt scoped to one service and one
// vendor. The filtered roster, availability grid and quick options are
// snapshotted into the session up front.
func (s *DefaultFlowService) OpenSession(ctx context.Context, serviceID, vendorID, userID string) (*models.BookingSession, error) {
	if serviceID == "" || vendorID == "" {
		return nil, NewMissingContextError("a service and vendor are required to open a booking session")
	}

	svc, err := s.Catalog.FindService(serviceID)
	if err != nil {
		return nil, NewMissingContextError(fmt.Sprintf("service %s could not be resolved", serviceID))
	}
	vendor, err := s.Catalog.FindVendor(vendorID)
	if err != nil {
		return nil, NewVendorNotFoundError(vendorID)
	}

	roster := s.Matching.FilterProfessionals(vendor.Professionals, *svc)

	windowDays := s.WindowDays
	if windowDays <= 0 {
		windowDays = 7
	}
	availability, err := s.Resolver.MultiDayAvailability(ctx, vendorID, svc.DurationMinutes, time.Now(), windowDays)
	if err != nil {
		// The flow stays usable without quick options; the full calendar can
		// be retried by the host.
		s.Logger.Warn("failed to resolve availability grid",
			zap.String("vendorId", vendorID), zap.Error(err))
		availability = []models.DayAvailability{}
	}

	session := &models.BookingSession{
		SessionID:     uuid.New().String(),
		ServiceID:     serviceID,
		VendorID:      vendorID,
		UserID:        userID,
		Step:          models.StepProfessionalSelection,
		PaymentMethod: models.PaymentCard,
		Professionals: roster,
		Availability:  availability,
		QuickOptions:  QuickOptions(availability),
		CreatedAt:     time.Now(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	s.Logger.Info("booking session opened",
		zap.String("sessionId", session.SessionID),
		zap.String("serviceId", serviceID),
		zap.String("vendorId", vendorID))
	return session, nil
}

func (s *DefaultFlowService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.Load(ctx, sessionID)
}

// mutate loads the session, applies fn and saves the result. fn returning an
// error leaves the stored session untouched.
func (s *DefaultFlowService) mutate(ctx context.Context, sessionID string, fn func(*models.BookingSession) error) (*models.BookingSession, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectProfessional records a preference. An empty id clears it back to
// "no preference". Selecting never moves the step.
func (s *DefaultFlowService) SelectProfessional(ctx context.Context, sessionID, professionalID string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		if professionalID == "" {
			session.SelectedProfessional = ""
			return nil
		}
		for _, p := range session.Professionals {
			if p.ID == professionalID {
				session.SelectedProfessional = professionalID
				return nil
			}
		}
		return NewGuardViolationError(fmt.Sprintf("professional %s is not in the roster for this service", professionalID))
	})
}

// SelectSlot sets the date and time directly, whether from a quick option or
// the full calendar. It never advances the step.
func (s *DefaultFlowService) SelectSlot(ctx context.Context, sessionID, date, timeStr string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return NewGuardViolationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
		}
		if _, err := time.Parse("15:04", timeStr); err != nil {
			return NewGuardViolationError(fmt.Sprintf("invalid time %q, expected HH:MM", timeStr))
		}
		session.SelectedDate = date
		session.SelectedTime = timeStr
		return nil
	})
}

// ToggleAddon adds the addon if absent and removes it if present, keeping the
// selection unique by id and in insertion order.
func (s *DefaultFlowService) ToggleAddon(ctx context.Context, sessionID, addonID string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		if session.HasAddon(addonID) {
			kept := session.SelectedAddons[:0]
			for _, a := range session.SelectedAddons {
				if a.ID != addonID {
					kept = append(kept, a)
				}
			}
			session.SelectedAddons = kept
			return nil
		}
		addon, err := s.Catalog.FindAddon(addonID)
		if err != nil {
			return NewGuardViolationError(fmt.Sprintf("addon %s could not be resolved", addonID))
		}
		session.SelectedAddons = append(session.SelectedAddons, *addon)
		return nil
	})
}

func (s *DefaultFlowService) SetNotes(ctx context.Context, sessionID, notes string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		session.Notes = notes
		return nil
	})
}

func (s *DefaultFlowService) SetPaymentMethod(ctx context.Context, sessionID, method string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		switch method {
		case models.PaymentCard, models.PaymentCash, models.PaymentApplePay:
			session.PaymentMethod = method
			return nil
		default:
			return NewGuardViolationError(fmt.Sprintf("unsupported payment method %q", method))
		}
	})
}

// Advance moves the session one step forward. Leaving configuration requires
// both a date and a time; leaving payment runs the submission.
func (s *DefaultFlowService) Advance(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case models.StepProfessionalSelection:
		session.Step = models.StepConfiguration
	case models.StepConfiguration:
		if !session.CanAdvance() {
			return nil, NewGuardViolationError("a date and time must be selected before continuing")
		}
		session.Step = models.StepDetails
	case models.StepDetails:
		session.Step = models.StepPayment
	case models.StepPayment:
		return s.confirm(ctx, session)
	default:
		return nil, NewGuardViolationError("the booking is already confirmed")
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves one step backward without losing any selection.
func (s *DefaultFlowService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(session *models.BookingSession) error {
		switch session.Step {
		case models.StepConfiguration:
			session.Step = models.StepProfessionalSelection
		case models.StepDetails:
			session.Step = models.StepConfiguration
		case models.StepPayment:
			session.Step = models.StepDetails
		default:
			return NewGuardViolationError("cannot go back from this step")
		}
		return nil
	})
}

// Cancel discards the session entirely; reopening starts from a clean slate.
func (s *DefaultFlowService) Cancel(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// confirm runs the submission for a session sitting on the payment step. Only
// one submission may be in flight per session; the Submitting flag is
// persisted before the call so a concurrent attempt is rejected.
func (s *DefaultFlowService) confirm(ctx context.Context, session *models.BookingSession) (*models.BookingSession, error) {
	if session.Submitting {
		return nil, &FlowError{Code: CodeSubmissionPending, Message: "a submission is already in flight for this session"}
	}
	if session.UserID == "" {
		return nil, NewSubmissionError("a signed-in user is required to confirm a booking")
	}
	user, err := s.Users.GetByID(session.UserID)
	if err != nil {
		return nil, NewSubmissionError(fmt.Sprintf("user %s could not be resolved", session.UserID))
	}
	svc, err := s.Catalog.FindService(session.ServiceID)
	if err != nil {
		return nil, NewSubmissionError(fmt.Sprintf("service %s could not be resolved", session.ServiceID))
	}

	session.Submitting = true
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	bookingRecord, submitErr := s.Submitter.Submit(ctx, *svc, *user, *session)

	// The session may have been cancelled while the submission was in
	// flight; in that case the result is simply dropped.
	current, err := s.Store.Load(ctx, session.SessionID)
	if err != nil {
		s.Logger.Info("session gone after submission, result dropped",
			zap.String("sessionId", session.SessionID))
		return nil, err
	}

	current.Submitting = false
	if submitErr != nil {
		if saveErr := s.Store.Save(ctx, current); saveErr != nil {
			return nil, saveErr
		}
		s.Logger.Error("booking submission failed",
			zap.String("sessionId", session.SessionID), zap.Error(submitErr))
		return nil, NewSubmissionError(submitErr.Error())
	}

	current.Step = models.StepConfirmation
	current.Booking = bookingRecord
	if err := s.Store.Save(ctx, current); err != nil {
		return nil, err
	}

	s.enqueueConfirmation(user, bookingRecord, svc.Name)
	s.Logger.Info("booking confirmed",
		zap.String("sessionId", session.SessionID),
		zap.String("bookingId", bookingRecord.ID))
	return current, nil
}

// enqueueConfirmation schedules the confirmation notification. Failures are
// logged and swallowed; the booking itself already succeeded.
func (s *DefaultFlowService) enqueueConfirmation(user *models.User, bookingRecord *models.Booking, serviceName string) {
	if s.Tasks == nil {
		return
	}
	task, err := tasks.NewBookingConfirmedTask(models.ConfirmationPayload{
		BookingID:   bookingRecord.ID,
		UserID:      user.ID,
		UserName:    user.Name,
		ServiceName: serviceName,
		Date:        bookingRecord.Date,
		Time:        bookingRecord.Time,
	})
	if err == nil {
		_, err = s.Tasks.Enqueue(task)
	}
	if err != nil {
		s.Logger.Warn("failed to enqueue confirmation task",
			zap.String("bookingId", bookingRecord.ID), zap.Error(err))
	}
}

// QuoteFor recomputes the price breakdown for the session's current
// selections.
func (s *DefaultFlowService) QuoteFor(ctx context.Context, sessionID string) (*Quote, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	svc, err := s.Catalog.FindService(session.ServiceID)
	if err != nil {
		return nil, NewMissingContextError(fmt.Sprintf("service %s could not be resolved", session.ServiceID))
	}
	quote := BuildQuote(*svc, session.SelectedAddons)
	return &quote, nil
}

// Links produces the WhatsApp and calendar URLs for a confirmed session.
func (s *DefaultFlowService) Links(ctx context.Context, sessionID string) (*DeepLinks, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmation {
		return nil, NewGuardViolationError("deep links are only available once the booking is confirmed")
	}
	svc, err := s.Catalog.FindService(session.ServiceID)
	if err != nil {
		return nil, NewMissingContextError(fmt.Sprintf("service %s could not be resolved", session.ServiceID))
	}
	vendor, err := s.Catalog.FindVendor(session.VendorID)
	if err != nil {
		return nil, NewVendorNotFoundError(session.VendorID)
	}

	var professionalName string
	for _, p := range session.Professionals {
		if p.ID == session.SelectedProfessional {
			professionalName = p.Name
			break
		}
	}

	quote := BuildQuote(*svc, session.SelectedAddons)
	calendar, err := CalendarLink(*svc, professionalName, session.SelectedDate, session.SelectedTime, quote.TotalDurationMinutes)
	if err != nil {
		return nil, err
	}
	return &DeepLinks{
		WhatsApp: WhatsAppLink(vendor.Phone, *svc, professionalName, session.SelectedDate, session.SelectedTime),
		Calendar: calendar,
	}, nil
}
