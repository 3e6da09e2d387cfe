package routes

import (
	"net/http"
	"time"

	"glowbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Catalog *handlers.CatalogHandler
}

// RegisterRoutes wires all endpoints into the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-User-ID"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Glowbook"})
	})
}

// RegisterCatalogRoutes registers the read-only directory endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/vendors/:id", hb.Catalog.GetVendor)
	}
}
