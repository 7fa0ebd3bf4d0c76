package handlers

import (
	"net/http"

	"antshop/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the session store status.
type HealthHandler struct {
	store utils.Pinger
}

func NewHealthHandler(store utils.Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) HandleHealth(c *gin.Context) {
	status := utils.CheckHealth(c.Request.Context(), h.store)
	code := http.StatusOK
	state := "ok"
	if !status.SessionStore {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{
		"status":        state,
		"session_store": status.SessionStore,
		"checked_at":    status.CheckedAt,
	})
}
