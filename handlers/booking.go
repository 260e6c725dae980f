package handlers

import (
	"errors"
	"net/http"

	"tablebook/middleware"
	"tablebook/models"
	"tablebook/services/booking"
	"tablebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the reservation endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetAvailabilityHandler returns the free slots for ?date=YYYY-MM-DD.
func (h *BookingHandler) GetAvailabilityHandler(c *gin.Context) {
	slots, err := h.Service.Availability(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.respondError(c, err, "Error checking availability")
		return
	}
	c.JSON(http.StatusOK, models.AvailabilityResponse{AvailableSlots: slots})
}

// GetSlotsHandler returns every slot of an operating day.
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": h.Service.Slots()})
}

// CreateBookingHandler books a slot.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.LoggerFrom(c, h.Logger).Warn("Invalid booking request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req.Date, req.Time, req.Details())
	if err != nil {
		h.respondError(c, err, "Error creating booking")
		return
	}
	c.JSON(http.StatusCreated, models.BookingResponse{Message: "Booking confirmed", Booking: created})
}

// ListBookingsHandler returns every booking ordered by date and time.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Error fetching bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler returns one booking.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Error fetching booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBookingHandler removes a booking and echoes it back.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	b, err := h.Service.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Error deleting booking")
		return
	}
	c.JSON(http.StatusOK, models.BookingResponse{Message: "Booking deleted successfully", Booking: b})
}

// respondError maps service errors to HTTP statuses. Anything unrecognised is
// logged and answered with fallback and a 500.
func (h *BookingHandler) respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.LoggerFrom(c, h.Logger)

	var (
		dateErr   *booking.InvalidDateError
		slotErr   *booking.InvalidSlotError
		bookedErr *booking.SlotAlreadyBookedError
		notFound  *booking.NotFoundError
	)
	switch {
	case errors.As(err, &dateErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", dateErr.Error())
	case errors.As(err, &slotErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid time slot", slotErr.Error())
	case errors.As(err, &bookedErr):
		logger.Info("Slot already booked", zap.Time("date", bookedErr.Date), zap.String("time", bookedErr.Time))
		utils.JSONError(c, http.StatusBadRequest, "This time slot is already booked for the selected date", "")
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
	default:
		logger.Error(fallback, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, fallback, "")
	}
}
