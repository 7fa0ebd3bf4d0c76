package handlers

import (
	"context"
	"errors"
	"net/http"

	"antshop/models"
	"antshop/services/checkout"
	"antshop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TurnHandler runs one dialogue turn. dialogue.Service implements it.
type TurnHandler interface {
	HandleTurn(ctx context.Context, sessionID, message string) (models.BotTurn, error)
}

// ChatHandler serves the chat endpoint.
type ChatHandler struct {
	turns TurnHandler
}

func NewChatHandler(turns TurnHandler) *ChatHandler {
	return &ChatHandler{turns: turns}
}

// HandleChat takes {"message", "session_id"?} and returns the bot turn.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	turn, err := h.turns.HandleTurn(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, checkout.ErrBridgeFailure) {
			utils.JSONSessionError(c, http.StatusServiceUnavailable, turn.SessionID,
				"Payment provider unavailable", "Could not create the checkout session. Please try again.")
			return
		}
		logger.Error("chat turn failed", zap.String("session_id", turn.SessionID), zap.Error(err))
		utils.JSONSessionError(c, http.StatusInternalServerError, turn.SessionID,
			"Internal Server Error", "An unexpected error occurred. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, turn)
}
