package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"antshop/models"
	"antshop/services/checkout"
	"antshop/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTurns struct {
	turn models.BotTurn
	err  error

	gotID, gotMessage string
}

func (f *fakeTurns) HandleTurn(_ context.Context, sessionID, message string) (models.BotTurn, error) {
	f.gotID, f.gotMessage = sessionID, message
	return f.turn, f.err
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newRouter(turns TurnHandler, store utils.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	hb := NewHandlerBundle(NewChatHandler(turns), NewHealthHandler(store))
	r.POST("/chat", hb.ChatHandler)
	r.GET("/health", hb.HealthHandler)
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandleChat_OK(t *testing.T) {
	turns := &fakeTurns{turn: models.BotTurn{
		Reply:     "Hola!",
		Choices:   []string{"Formigues"},
		SessionID: "s-1",
	}}
	w := post(newRouter(turns, pinger{}), `{"message":"hola","session_id":"s-1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s-1", turns.gotID)
	assert.Equal(t, "hola", turns.gotMessage)

	var got models.BotTurn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Hola!", got.Reply)
	assert.Equal(t, []string{"Formigues"}, got.Choices)
	assert.Equal(t, "s-1", got.SessionID)
}

func TestHandleChat_NoSessionID(t *testing.T) {
	turns := &fakeTurns{turn: models.BotTurn{Reply: "x", SessionID: "new"}}
	w := post(newRouter(turns, pinger{}), `{"message":"hola"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, turns.gotID)
}

func TestHandleChat_BadBody(t *testing.T) {
	turns := &fakeTurns{}
	w := post(newRouter(turns, pinger{}), `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, turns.gotMessage)
}

func TestHandleChat_BridgeFailure(t *testing.T) {
	turns := &fakeTurns{
		turn: models.BotTurn{SessionID: "s-9"},
		err:  checkout.NewCheckoutError("card_declined", "declined", nil),
	}
	w := post(newRouter(turns, pinger{}), `{"message":"pagar","session_id":"s-9"}`)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var got utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "s-9", got.SessionID)
}

func TestHandleChat_InternalError(t *testing.T) {
	turns := &fakeTurns{err: errors.New("store down")}
	w := post(newRouter(turns, pinger{}), `{"message":"hola"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"healthy", nil, http.StatusOK},
		{"store down", errors.New("unreachable"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newRouter(&fakeTurns{}, pinger{err: tt.err}).
				ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
