package session

import (
	"context"
	"errors"

	"antshop/models"
)

// ErrNotFound is returned by a Store when no session has the given id.
var ErrNotFound = errors.New("session not found")

// Store persists sessions. Implementations return copies: mutating a session
// returned by Get has no effect until it is passed to Save.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Ping(ctx context.Context) error
}
