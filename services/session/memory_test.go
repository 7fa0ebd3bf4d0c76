package session

import (
	"context"
	"testing"
	"time"

	"antshop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSave(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	sess := models.NewSession("s1", time.Now())
	sess.Context.Topic = models.TopicAnts
	require.NoError(t, store.Save(ctx, sess))

	// Mutations after Save are not visible until saved again.
	sess.Context.Address = "C/ Major 1"

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.TopicAnts, got.Context.Topic)
	assert.Empty(t, got.Context.Address)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Now()

	old := models.NewSession("old", now.Add(-2*time.Hour))
	fresh := models.NewSession("fresh", now)
	require.NoError(t, store.Save(ctx, old))
	require.NoError(t, store.Save(ctx, fresh))

	assert.Equal(t, 1, store.Sweep(now.Add(-time.Hour)))

	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, "fresh")
	assert.NoError(t, err)
}
