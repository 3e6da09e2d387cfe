package booking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"glowbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memStore is an in-memory SessionStore. It round-trips through JSON so
// stored sessions are isolated from the caller's copy, like the Redis store.
type memStore struct {
	sessions map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string][]byte)}
}

func (s *memStore) Save(_ context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.sessions[session.SessionID] = data
	return nil
}

func (s *memStore) Load(_ context.Context, sessionID string) (*models.BookingSession, error) {
	data, ok := s.sessions[sessionID]
	if !ok {
		return nil, NewSessionNotFoundError(sessionID)
	}
	var session models.BookingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *memStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type fakeCatalog struct {
	services map[string]models.Service
	addons   map[string]models.Addon
	vendors  map[string]models.Vendor
}

func (c *fakeCatalog) FindService(id string) (*models.Service, error) {
	svc, ok := c.services[id]
	if !ok {
		return nil, errors.New("service not found")
	}
	return &svc, nil
}

func (c *fakeCatalog) FindVendor(id string) (*models.Vendor, error) {
	v, ok := c.vendors[id]
	if !ok {
		return nil, errors.New("vendor not found")
	}
	return &v, nil
}

func (c *fakeCatalog) FindAddon(id string) (*models.Addon, error) {
	a, ok := c.addons[id]
	if !ok {
		return nil, errors.New("addon not found")
	}
	return &a, nil
}

func (c *fakeCatalog) ListServices() ([]models.Service, error) { return nil, nil }

type fakeUsers struct {
	users map[string]models.User
}

func (r *fakeUsers) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

type stubResolver struct {
	grid []models.DayAvailability
	err  error
}

func (r *stubResolver) MultiDayAvailability(context.Context, string, int, time.Time, int) ([]models.DayAvailability, error) {
	return r.grid, r.err
}

type stubSubmitter struct {
	err error
}

func (s *stubSubmitter) Submit(_ context.Context, svc models.Service, user models.User, session models.BookingSession) (*models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Booking{
		ID:            "bk-1",
		ServiceID:     svc.ID,
		VendorID:      session.VendorID,
		UserID:        user.ID,
		Date:          session.SelectedDate,
		Time:          session.SelectedTime,
		PaymentMethod: session.PaymentMethod,
		Status:        "confirmed",
		CreatedAt:     time.Now(),
	}, nil
}

func newTestFlow(submitErr error) (*DefaultFlowService, *memStore) {
	store := newMemStore()
	flow := &DefaultFlowService{
		Catalog: &fakeCatalog{
			services: map[string]models.Service{
				"svc-1": {ID: "svc-1", VendorID: "v1", Name: "Balayage Completo", Category: "hair", Price: 1000, DurationMinutes: 60},
			},
			addons: map[string]models.Addon{
				"a1": {ID: "a1", Name: "Tratamiento Profundo", Price: 300, DurationMinutes: 30},
				"a2": {ID: "a2", Name: "Lavado Premium", Price: 150},
			},
			vendors: map[string]models.Vendor{
				"v1": {
					ID:    "v1",
					Name:  "Salón Belleza Total",
					Phone: "18095550123",
					Professionals: []models.Professional{
						{ID: "p1", Name: "Ana", Specialties: []string{"Balayage"}},
						{ID: "p2", Name: "Rosa"},
					},
				},
			},
		},
		Users:     &fakeUsers{users: map[string]models.User{"u1": {ID: "u1", Name: "María"}}},
		Matching:  NewDefaultMatchingService(),
		Resolver:  &stubResolver{grid: []models.DayAvailability{day("2025-03-03", models.DayAvailable, "09:00", "10:00")}},
		Submitter: &stubSubmitter{err: submitErr},
		Store:     store,
		Logger:    zap.NewNop(),
	}
	return flow, store
}

func openTestSession(t *testing.T, flow *DefaultFlowService) *models.BookingSession {
	t.Helper()
	session, err := flow.OpenSession(context.Background(), "svc-1", "v1", "u1")
	require.NoError(t, err)
	return session
}

// advanceTo walks the session forward to the wanted step, filling the
// configuration guard on the way.
func advanceTo(t *testing.T, flow *DefaultFlowService, sessionID string, step models.BookingStep) *models.BookingSession {
	t.Helper()
	ctx := context.Background()
	session, err := flow.GetSession(ctx, sessionID)
	require.NoError(t, err)
	for session.Step != step {
		if session.Step == models.StepConfiguration && session.SelectedDate == "" {
			session, err = flow.SelectSlot(ctx, sessionID, "2025-03-03", "09:00")
			require.NoError(t, err)
		}
		session, err = flow.Advance(ctx, sessionID)
		require.NoError(t, err)
	}
	return session
}

func TestOpenSessionDefaults(t *testing.T) {
	flow, _ := newTestFlow(nil)

	session := openTestSession(t, flow)

	assert.Equal(t, models.StepProfessionalSelection, session.Step)
	assert.Equal(t, models.PaymentCard, session.PaymentMethod)
	assert.Empty(t, session.SelectedProfessional)
	assert.Empty(t, session.SelectedAddons)
	assert.Len(t, session.QuickOptions, 2)
}

func TestOpenSessionRequiresContext(t *testing.T) {
	flow, _ := newTestFlow(nil)

	_, err := flow.OpenSession(context.Background(), "", "v1", "u1")
	assert.True(t, IsFlowCode(err, CodeMissingContext))

	_, err = flow.OpenSession(context.Background(), "svc-1", "v-missing", "u1")
	assert.True(t, IsFlowCode(err, CodeVendorNotFound))
}

func TestOpenSessionSurvivesResolverFailure(t *testing.T) {
	flow, _ := newTestFlow(nil)
	flow.Resolver = &stubResolver{err: errors.New("scheduler down")}

	session := openTestSession(t, flow)

	assert.Empty(t, session.Availability)
	assert.Empty(t, session.QuickOptions)
}

func TestConfigurationGuardBlocksAdvance(t *testing.T) {
	flow, _ := newTestFlow(nil)
	session := openTestSession(t, flow)
	ctx := context.Background()

	_, err := flow.Advance(ctx, session.SessionID) // → configuration
	require.NoError(t, err)

	_, err = flow.Advance(ctx, session.SessionID)
	assert.True(t, IsFlowCode(err, CodeGuardViolation))

	stored, err := flow.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfiguration, stored.Step)

	// With date and time set the guard opens.
	_, err = flow.SelectSlot(ctx, session.SessionID, "2025-03-03", "09:00")
	require.NoError(t, err)
	stored, err = flow.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, stored.Step)
}

func TestSelectionsNeverChangeStep(t *testing.T) {
	flow, _ := newTestFlow(nil)
	session := openTestSession(t, flow)
	ctx := context.Background()

	s, err := flow.SelectProfessional(ctx, session.SessionID, "p1")
	require.NoError(t, err)
	assert.Equal(t, models.StepProfessionalSelection, s.Step)

	s, err = flow.SelectSlot(ctx, session.SessionID, "2025-03-03", "10:00")
	require.NoError(t, err)
	assert.Equal(t, models.StepProfessionalSelection, s.Step)

	s, err = flow.ToggleAddon(ctx, session.SessionID, "a1")
	require.NoError(t, err)
	assert.Equal(t, models.StepProfessionalSelection, s.Step)
}

func TestToggleAddonAddsAndRemoves(t *testing.T) {
	flow, _ := newTestFlow(nil)
	session := openTestSession(t, flow)
	ctx := context.Background()

	s, err := flow.ToggleAddon(ctx, session.SessionID, "a1")
	require.NoError(t, err)
	s, err = flow.ToggleAddon(ctx, session.SessionID, "a2")
	require.NoError(t, err)
	require.Len(t, s.SelectedAddons, 2)
	assert.Equal(t, "a1", s.SelectedAddons[0].ID)

	// Toggling an already-selected addon removes it; no duplicates ever.
	s, err = flow.ToggleAddon(ctx, session.SessionID, "a1")
	require.NoError(t, err)
	require.Len(t, s.SelectedAddons, 1)
	assert.Equal(t, "a2", s.SelectedAddons[0].ID)

	_, err = flow.ToggleAddon(ctx, session.SessionID, "a-missing")
	assert.True(t, IsFlowCode(err, CodeGuardViolation))
}

func TestSelectProfessionalValidatesRoster(t *testing.T) {
	flow, _ := newTestFlow(nil)
	session := openTestSession(t, flow)
	ctx := context.Background()

	_, err := flow.SelectProfessional(ctx, session.SessionID, "p-missing")
	assert.True(t, IsFlowCode(err, CodeGuardViolation))

	s, err := flow.SelectProfessional(ctx, session.SessionID, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", s.SelectedProfessional)

	// Empty id clears the preference.
	s, err = flow.SelectProfessional(ctx, session.SessionID, "")
	require.NoError(t, err)
	assert.Empty(t, s.SelectedProfessional)
}

func TestBackIsLossless(t *testing.T) {
	flow, _ := newTestFlow(nil)
	session := openTestSession(t, flow)
	ctx := context.Background()

	_, err := flow.SelectProfessional(ctx, session.SessionID, "p1")
	require.NoError(t, err)
	advanceTo(t, flow, session.SessionID, models.StepDetails)

	s, err := flow.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfiguration, s.Step)
	assert.Equal(t, "p1", s.SelectedProfessional)
	assert.Equal(t, "2025-03-03", s.SelectedDate)

	s, err = flow.Back(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepProfessionalSelection, s.Step)

	_, err = flow.Back(ctx, session.SessionID)
	assert.True(t, IsFlowCode(err, CodeGuardViolation))
}

func TestHappyPathReachesConfirmation(t *testing.T) {
	flow, _ := newTestFlow(nil)
	session := openTestSession(t, flow)
	ctx := context.Background()

	advanceTo(t, flow, session.SessionID, models.StepPayment)
	s, err := flow.Advance(ctx, session.SessionID)
	require.NoError(t, err)

	assert.Equal(t, models.StepConfirmation, s.Step)
	require.NotNil(t, s.Booking)
	assert.Equal(t, "confirmed", s.Booking.Status)
	assert.Equal(t, "u1", s.Booking.UserID)
	assert.False(t, s.Submitting)

	// Confirmation is terminal.
	_, err = flow.Advance(ctx, session.SessionID)
	assert.True(t, IsFlowCode(err, CodeGuardViolation))
}

func TestSubmissionFailureStaysOnPayment(t *testing.T) {
	flow, _ := newTestFlow(errors.New("backend unavailable"))
	session := openTestSession(t, flow)
	ctx := context.Background()

	advanceTo(t, flow, session.SessionID, models.StepPayment)
	_, err := flow.Advance(ctx, session.SessionID)
	assert.True(t, IsFlowCode(err, CodeSubmissionFailed))

	stored, err := flow.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepPayment, stored.Step)
	assert.Nil(t, stored.Booking)
	assert.False(t, stored.Submitting)
}

func TestSubmissionRequiresUser(t *testing.T) {
	flow, _ := newTestFlow(nil)
	session, err := flow.OpenSession(context.Background(), "svc-1", "v1", "")
	require.NoError(t, err)
	ctx := context.Background()

	advanceTo(t, flow, session.SessionID, models.StepPayment)
	_, err = flow.Advance(ctx, session.SessionID)
	assert.True(t, IsFlowCode(err, CodeSubmissionFailed))
}

func TestOnlyOneSubmissionInFlight(t *testing.T) {
	flow, store := newTestFlow(nil)
	session := openTestSession(t, flow)
	ctx := context.Background()

	advanceTo(t, flow, session.SessionID, models.StepPayment)

	// Simulate a submission already in flight.
	stored, err := store.Load(ctx, session.SessionID)
	require.NoError(t, err)
	stored.Submitting = true
	require.NoError(t, store.Save(ctx, stored))

	_, err = flow.Advance(ctx, session.SessionID)
	assert.True(t, IsFlowCode(err, CodeSubmissionPending))
}

func TestCancelResetsEverything(t *testing.T) {
	flow, _ := newTestFlow(nil)
	session := openTestSession(t, flow)
	ctx := context.Background()

	_, err := flow.SelectProfessional(ctx, session.SessionID, "p1")
	require.NoError(t, err)
	_, err = flow.ToggleAddon(ctx, session.SessionID, "a1")
	require.NoError(t, err)
	_, err = flow.ToggleAddon(ctx, session.SessionID, "a2")
	require.NoError(t, err)

	require.NoError(t, flow.Cancel(ctx, session.SessionID))
	_, err = flow.GetSession(ctx, session.SessionID)
	assert.True(t, IsFlowCode(err, CodeSessionNotFound))

	// Reopening starts from a clean slate.
	reopened := openTestSession(t, flow)
	assert.Empty(t, reopened.SelectedProfessional)
	assert.Empty(t, reopened.SelectedAddons)
	assert.Equal(t, models.StepProfessionalSelection, reopened.Step)
}

func TestQuoteForRecomputesOnSelectionChange(t *testing.T) {
	flow, _ := newTestFlow(nil)
	session := openTestSession(t, flow)
	ctx := context.Background()

	quote, err := flow.QuoteFor(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, float64(1274), quote.PayableTotal)

	_, err = flow.ToggleAddon(ctx, session.SessionID, "a1")
	require.NoError(t, err)
	quote, err = flow.QuoteFor(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, float64(1574), quote.PayableTotal)
	assert.Equal(t, 90, quote.TotalDurationMinutes)
}

func TestLinksOnlyAfterConfirmation(t *testing.T) {
	flow, _ := newTestFlow(nil)
	session := openTestSession(t, flow)
	ctx := context.Background()

	_, err := flow.Links(ctx, session.SessionID)
	assert.True(t, IsFlowCode(err, CodeGuardViolation))

	_, err = flow.SelectProfessional(ctx, session.SessionID, "p1")
	require.NoError(t, err)
	advanceTo(t, flow, session.SessionID, models.StepPayment)
	_, err = flow.Advance(ctx, session.SessionID)
	require.NoError(t, err)

	links, err := flow.Links(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Contains(t, links.WhatsApp, "wa.me/18095550123")
	assert.Contains(t, links.Calendar, "calendar.google.com")
}
