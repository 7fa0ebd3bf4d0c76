package session

import (
	"context"
	"errors"
	"time"

	"antshop/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager resolves sessions from a Store and serializes turns per session id.
type Manager struct {
	store  Store
	locker *Locker
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

func NewManager(store Store, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		locker: NewLocker(),
		logger: logger,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// Resolve returns the session for id, or a fresh one when id is empty or unknown.
// The fresh session is not persisted until Save.
func (m *Manager) Resolve(ctx context.Context, id string) (*models.Session, bool, error) {
	if id != "" {
		sess, err := m.store.Get(ctx, id)
		if err == nil {
			return sess, false, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, false, err
		}
		m.logger.Debug("unknown session id, starting a new one", zap.String("requested_id", id))
	}
	return models.NewSession(m.newID(), m.now()), true, nil
}

// Save stamps and persists the session.
func (m *Manager) Save(ctx context.Context, sess *models.Session) error {
	sess.UpdatedAt = m.now()
	return m.store.Save(ctx, sess)
}

// Do runs fn with exclusive access to the session behind id, then saves it.
// The session is saved even when fn fails, since history already records the
// user's message. A save failure is joined with fn's error so both stay
// matchable with errors.Is.
func (m *Manager) Do(ctx context.Context, id string, fn func(*models.Session) error) (*models.Session, error) {
	if id != "" {
		unlock := m.locker.Lock(id)
		defer unlock()
	}

	sess, created, err := m.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if created {
		m.logger.Info("session created", zap.String("session_id", sess.ID))
	}

	fnErr := fn(sess)
	if err := m.Save(ctx, sess); err != nil {
		m.logger.Error("session save failed", zap.String("session_id", sess.ID), zap.Error(err))
		return sess, errors.Join(fnErr, err)
	}
	return sess, fnErr
}

// Ping checks the backing store.
func (m *Manager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}
