package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"antshop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestManager_ResolveCreatesAndReuses(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), zap.NewNop())

	sess, created, err := m.Resolve(ctx, "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, sess.ID)
	require.NoError(t, m.Save(ctx, sess))

	again, created, err := m.Resolve(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, sess.ID, again.ID)

	other, created, err := m.Resolve(ctx, "unknown-id")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, "unknown-id", other.ID)
}

type failingStore struct{ MemoryStore }

func (f *failingStore) Get(context.Context, string) (*models.Session, error) {
	return nil, errors.New("backend down")
}

func TestManager_ResolvePropagatesStoreErrors(t *testing.T) {
	m := NewManager(&failingStore{}, zap.NewNop())
	_, _, err := m.Resolve(context.Background(), "abc")
	assert.ErrorContains(t, err, "backend down")
}

func TestManager_DoSavesEvenOnError(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store, zap.NewNop())

	boom := errors.New("boom")
	sess, err := m.Do(ctx, "", func(s *models.Session) error {
		s.Append(models.Message{Role: models.RoleUser, Content: "hola"})
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, sess)

	stored, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Len(t, stored.History, 1)
}

type saveFailingStore struct{ *MemoryStore }

func (s saveFailingStore) Save(context.Context, *models.Session) error {
	return errors.New("write refused")
}

func TestManager_DoKeepsTurnErrorWhenSaveFails(t *testing.T) {
	m := NewManager(saveFailingStore{NewMemoryStore()}, zap.NewNop())

	turnErr := errors.New("provider unavailable")
	sess, err := m.Do(context.Background(), "", func(*models.Session) error { return turnErr })
	require.NotNil(t, sess)
	assert.ErrorIs(t, err, turnErr)
	assert.ErrorContains(t, err, "write refused")

	_, err = m.Do(context.Background(), "", func(*models.Session) error { return nil })
	assert.ErrorContains(t, err, "write refused")
}

func TestManager_DoSerializesTurns(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), zap.NewNop())

	first, err := m.Do(ctx, "", func(*models.Session) error { return nil })
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Do(ctx, first.ID, func(s *models.Session) error {
				s.Context.Quantity++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, _, err := m.Resolve(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 51, final.Context.Quantity)
}
