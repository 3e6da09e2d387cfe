package models

import "time"

// BookingStep identifies the current step of the reservation flow.
type BookingStep string

const (
	StepProfessionalSelection BookingStep = "professional_selection"
	StepConfiguration         BookingStep = "configuration"
	StepDetails               BookingStep = "details"
	StepPayment               BookingStep = "payment"
	StepConfirmation          BookingStep = "confirmation"
)

// Accepted payment methods.
const (
	PaymentCard     = "card"
	PaymentCash     = "cash"
	PaymentApplePay = "apple_pay"
)

// BookingSession holds all state accumulated across one reservation attempt.
// It is owned exclusively by the booking flow service and persisted as a JSON
// blob in the session cache between requests.
type BookingSession struct {
	SessionID string      `json:"sessionId"`
	ServiceID string      `json:"serviceId"`
	VendorID  string      `json:"vendorId"`
	UserID    string      `json:"userId"`
	Step      BookingStep `json:"step"`

	SelectedDate         string  `json:"selectedDate,omitempty"` // "YYYY-MM-DD"
	SelectedTime         string  `json:"selectedTime,omitempty"` // "HH:MM"
	SelectedProfessional string  `json:"selectedProfessionalId,omitempty"`
	SelectedAddons       []Addon `json:"selectedAddons,omitempty"` // unique by id, insertion order kept
	Notes                string  `json:"notes,omitempty"`
	PaymentMethod        string  `json:"paymentMethod"`

	// Snapshots taken when the session opens.
	Professionals []Professional    `json:"professionals"`
	Availability  []DayAvailability `json:"availability"`
	QuickOptions  []QuickOption     `json:"quickOptions"`

	// Submitting guards against concurrent submission attempts.
	Submitting bool     `json:"submitting"`
	Booking    *Booking `json:"booking,omitempty"` // set once, at confirmation

	CreatedAt time.Time `json:"createdAt"`
}

// HasAddon reports whether the addon with the given id is already selected.
func (s *BookingSession) HasAddon(id string) bool {
	for _, a := range s.SelectedAddons {
		if a.ID == id {
			return true
		}
	}
	return false
}

// CanAdvance reports whether the session satisfies the guard for leaving its
// current step. Only the configuration step carries a guard: both a date and
// a time must be chosen.
func (s *BookingSession) CanAdvance() bool {
	if s.Step == StepConfiguration {
		return s.SelectedDate != "" && s.SelectedTime != ""
	}
	return s.Step != StepConfirmation
}
