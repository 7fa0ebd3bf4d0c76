package dialogue

import (
	"context"

	"antshop/models"
)

// SessionRunner gives exclusive access to one session for the duration of fn
// and persists it afterwards. session.Manager implements it.
type SessionRunner interface {
	Do(ctx context.Context, id string, fn func(*models.Session) error) (*models.Session, error)
}

// Service is the entry point used by transports: one message in, one BotTurn out.
type Service struct {
	sessions SessionRunner
	engine   *Engine
}

func NewService(sessions SessionRunner, engine *Engine) *Service {
	return &Service{sessions: sessions, engine: engine}
}

// HandleTurn resolves (or creates) the session and runs one turn on it. On
// error the returned BotTurn still carries the session id when one was
// resolved, so callers can let the user retry.
func (s *Service) HandleTurn(ctx context.Context, sessionID, message string) (models.BotTurn, error) {
	var out models.BotTurn
	sess, err := s.sessions.Do(ctx, sessionID, func(sess *models.Session) error {
		var err error
		out, err = s.engine.HandleTurn(ctx, sess, message)
		return err
	})
	if sess != nil {
		out.SessionID = sess.ID
	}
	return out, err
}
