package routes

import (
	"glowbook/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the reservation flow.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.Use(middleware.IdentityMiddleware())
		booking.POST("/session", hb.Booking.OpenSession)
		booking.GET("/session/:sessionID", hb.Booking.GetSession)
		booking.PUT("/session/:sessionID/professional", hb.Booking.SelectProfessional)
		booking.PUT("/session/:sessionID/slot", hb.Booking.SelectSlot)
		booking.PUT("/session/:sessionID/addons", hb.Booking.ToggleAddon)
		booking.PUT("/session/:sessionID/notes", hb.Booking.SetNotes)
		booking.PUT("/session/:sessionID/payment-method", hb.Booking.SetPaymentMethod)
		booking.POST("/session/:sessionID/advance", hb.Booking.Advance)
		booking.POST("/session/:sessionID/back", hb.Booking.Back)
		booking.DELETE("/session/:sessionID", hb.Booking.Cancel)
		booking.GET("/session/:sessionID/quote", hb.Booking.Quote)
		booking.GET("/session/:sessionID/links", hb.Booking.Links)
	}
}
