package handlers

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Booking *BookingHandler
	Health  *HealthHandler
}
