package session

import (
	"context"
	"testing"
	"time"

	"antshop/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewRedisStore(client, 30*time.Minute)

	_, err := store.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	yes := true
	sess := models.NewSession("abc", time.Now().UTC().Truncate(time.Second))
	sess.Context.Topic = models.TopicAnts
	sess.Context.KidsOrPets = &yes
	sess.Append(models.Message{Role: models.RoleAssistant, Content: "hola", Prompt: models.PromptAddress})
	require.NoError(t, store.Save(ctx, sess))

	assert.True(t, mr.Exists(sessionPrefix+"abc"))
	assert.Equal(t, 30*time.Minute, mr.TTL(sessionPrefix+"abc"))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sess.Context, got.Context)
	assert.Equal(t, sess.History, got.History)
	assert.True(t, sess.CreatedAt.Equal(got.CreatedAt))
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewRedisStore(client, time.Minute)

	require.NoError(t, store.Save(ctx, models.NewSession("abc", time.Now())))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := NewRedisStore(client, 0)

	require.NoError(t, mr.Set(sessionPrefix+"bad", "{not json"))
	_, err := store.Get(ctx, "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Ping(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewRedisStore(client, 0)

	assert.NoError(t, store.Ping(context.Background()))
	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
