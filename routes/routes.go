package routes

import (
	"time"

	"feastly/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route tree needs.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Availability *handlers.AvailabilityHandler
	Event        *handlers.EventHandler
}

// RegisterHealthRoute registers the health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes wires all endpoint groups onto the engine.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterEventRoutes(r, hb)
}
