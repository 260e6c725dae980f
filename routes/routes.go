package routes

import (
	"time"

	"tablebook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, h *handlers.HealthHandler) {
	r.GET("/health", h.GetHealthHandler)
}

// CORS lets the single frontend origin call the API. An empty origin
// disables cross-origin access.
func CORS(allowedOrigin string) gin.HandlerFunc {
	if allowedOrigin == "" {
		return func(c *gin.Context) { c.Next() }
	}
	return cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigin string) {
	r.Use(CORS(allowedOrigin))

	RegisterHealthRoute(r, hb.Health)
	RegisterBookingRoutes(r, hb.Booking)
}
