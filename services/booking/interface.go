package booking

import (
	"context"

	catalogRepo "glowbook/database/repository/catalog"
	userRepo "glowbook/database/repository/user"
	"glowbook/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// FlowService drives one reservation attempt from opening to confirmation.
// All mutation of the BookingSession happens behind this interface.
type FlowService interface {
	OpenSession(ctx context.Context, serviceID, vendorID, userID string) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectProfessional(ctx context.Context, sessionID, professionalID string) (*models.BookingSession, error)
	SelectSlot(ctx context.Context, sessionID, date, timeStr string) (*models.BookingSession, error)
	ToggleAddon(ctx context.Context, sessionID, addonID string) (*models.BookingSession, error)
	SetNotes(ctx context.Context, sessionID, notes string) (*models.BookingSession, error)
	SetPaymentMethod(ctx context.Context, sessionID, method string) (*models.BookingSession, error)
	Advance(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Cancel(ctx context.Context, sessionID string) error
	QuoteFor(ctx context.Context, sessionID string) (*Quote, error)
	Links(ctx context.Context, sessionID string) (*DeepLinks, error)
}

// DefaultFlowService implements FlowService.
type DefaultFlowService struct {
	Catalog    catalogRepo.Repository
	Users      userRepo.Repository
	Matching   MatchingService
	Resolver   AvailabilityResolver
	Submitter  SubmissionService
	Store      SessionStore
	Tasks      *asynq.Client // optional; nil disables confirmation tasks
	WindowDays int
	Logger     *zap.Logger
}
