package handlers

import (
	"net/http"

	"glowbook/middleware"
	"glowbook/services/booking"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the reservation flow over HTTP.
type BookingHandler struct {
	Flow   booking.FlowService
	Logger *zap.Logger
}

func NewBookingHandler(flow booking.FlowService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Flow: flow, Logger: logger}
}

// flowStatus maps a flow error code to its HTTP treatment.
func flowStatus(err error) int {
	fe, ok := err.(*booking.FlowError)
	if !ok {
		return http.StatusInternalServerError
	}
	switch fe.Code {
	case booking.CodeMissingContext:
		return http.StatusBadRequest
	case booking.CodeVendorNotFound, booking.CodeSessionNotFound:
		return http.StatusNotFound
	case booking.CodeGuardViolation, booking.CodeSubmissionPending:
		return http.StatusConflict
	case booking.CodeSubmissionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *BookingHandler) respondFlowError(c *gin.Context, err error) {
	utils.JSONError(c, flowStatus(err), "booking flow error", err.Error())
}

// OpenSession starts a new reservation attempt.
func (h *BookingHandler) OpenSession(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId"`
		VendorID  string `json:"vendorId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Flow.OpenSession(c.Request.Context(), input.ServiceID, input.VendorID, middleware.CurrentUserID(c))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the current session state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Flow.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectProfessional records (or clears) the professional preference.
func (h *BookingHandler) SelectProfessional(c *gin.Context) {
	var input struct {
		ProfessionalID string `json:"professionalId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Flow.SelectProfessional(c.Request.Context(), c.Param("sessionID"), input.ProfessionalID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectSlot sets the date and time, from a quick option or the calendar.
func (h *BookingHandler) SelectSlot(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Flow.SelectSlot(c.Request.Context(), c.Param("sessionID"), input.Date, input.Time)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ToggleAddon adds or removes one add-on from the selection.
func (h *BookingHandler) ToggleAddon(c *gin.Context) {
	var input struct {
		AddonID string `json:"addonId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Flow.ToggleAddon(c.Request.Context(), c.Param("sessionID"), input.AddonID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetNotes stores the free-text notes.
func (h *BookingHandler) SetNotes(c *gin.Context) {
	var input struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Flow.SetNotes(c.Request.Context(), c.Param("sessionID"), input.Notes)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetPaymentMethod picks one of the accepted payment methods.
func (h *BookingHandler) SetPaymentMethod(c *gin.Context) {
	var input struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	session, err := h.Flow.SetPaymentMethod(c.Request.Context(), c.Param("sessionID"), input.Method)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Advance moves the flow forward; from the payment step this runs the
// submission and, on success, lands on confirmation.
func (h *BookingHandler) Advance(c *gin.Context) {
	session, err := h.Flow.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "booking": session.Booking})
}

// Back moves the flow one step backward.
func (h *BookingHandler) Back(c *gin.Context) {
	session, err := h.Flow.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Cancel discards the session.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.Flow.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// Quote returns the current price breakdown.
func (h *BookingHandler) Quote(c *gin.Context) {
	quote, err := h.Flow.QuoteFor(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

// Links returns the WhatsApp and calendar deep links for a confirmed booking.
func (h *BookingHandler) Links(c *gin.Context) {
	links, err := h.Flow.Links(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": links})
}
