package routes

import (
	"feastly/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking request lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookings := r.Group("/api/bookings")
	bookings.Use(middleware.JWTAuthMiddleware())
	{
		bookings.POST("/requests", middleware.RequireRole("customer"), hb.Booking.CreateBookingRequest)
		bookings.POST("/:id/decision", middleware.RequireRole("restaurant"), hb.Booking.MakeDecision)
		bookings.GET("/:id/messages", middleware.RequireRole("customer", "restaurant"), hb.Booking.ListMessages)
		bookings.POST("/:id/messages", middleware.RequireRole("customer", "restaurant"), hb.Booking.SendMessage)
	}

	r.GET("/api/restaurants/:id/bookings",
		middleware.JWTAuthMiddleware(), middleware.RequireRole("restaurant"), hb.Booking.RestaurantBookings)
	r.GET("/api/customers/:id/bookings",
		middleware.JWTAuthMiddleware(), middleware.RequireRole("customer"), hb.Booking.CustomerBookings)
}

// RegisterAvailabilityRoutes registers availability checks and manual block
// management. The check and browse paths are public; block mutation is
// restaurant-only.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/api/restaurants/:id/availability", hb.Availability.CheckAvailability)
	r.GET("/api/availability/blocked-spaces", hb.Availability.BlockedSpaces)

	blocks := r.Group("/api/restaurants/:id/availability/blocks")
	blocks.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("restaurant"))
	{
		blocks.GET("", hb.Availability.ListBlocks)
		blocks.POST("", hb.Availability.CreateBlock)
		blocks.DELETE("/:blockId", hb.Availability.DeleteBlock)
	}
}

// RegisterEventRoutes registers the post-approval event endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *HandlerBundle) {
	events := r.Group("/api/events")
	events.Use(middleware.JWTAuthMiddleware())
	{
		events.GET("/:id", hb.Event.GetEvent)
		events.GET("/:id/reviews", hb.Event.ListReviews)
		events.PUT("/:id/specs", middleware.RequireRole("restaurant"), hb.Event.UpdateSpecs)
		events.POST("/:id/complete", middleware.RequireRole("restaurant", "admin"), hb.Event.CompleteEvent)
		events.POST("/:id/reviews", middleware.RequireRole("customer"), hb.Event.AddReview)
	}
}
