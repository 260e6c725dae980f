package handlers

import (
	"net/http"

	"tablebook/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency health snapshot.
type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(m *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: m}
}

func (h *HealthHandler) GetHealthHandler(c *gin.Context) {
	if h.Monitor == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	c.JSON(http.StatusOK, h.Monitor.Status())
}
