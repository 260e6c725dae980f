package routes

import (
	"tablebook/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for reservations.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api")
	{
		api.GET("/availability", h.GetAvailabilityHandler)
		api.GET("/slots", h.GetSlotsHandler)

		api.POST("/bookings", h.CreateBookingHandler)
		api.GET("/bookings", h.ListBookingsHandler)
		api.GET("/bookings/:id", h.GetBookingHandler)
		api.DELETE("/bookings/:id", h.DeleteBookingHandler)
	}
}
