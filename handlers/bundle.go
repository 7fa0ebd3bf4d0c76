package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers registered by routes.
type HandlerBundle struct {
	ChatHandler   gin.HandlerFunc
	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the chat and health handlers.
func NewHandlerBundle(chat *ChatHandler, health *HealthHandler) *HandlerBundle {
	return &HandlerBundle{
		ChatHandler:   chat.HandleChat,
		HealthHandler: health.HandleHealth,
	}
}
