package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"usermgmt/config"
	"usermgmt/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func setupIdentityCache(t *testing.T, ttl time.Duration) (*redisIdentityCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c, ok := NewRedisIdentityCache(client, ttl).(*redisIdentityCache)
	require.True(t, ok)

	return c, mr
}

func TestRedisIdentityCache_SetGetInvalidate(t *testing.T) {
	c, mr := setupIdentityCache(t, time.Minute)
	ctx := context.Background()

	user := entity.NewUser("Jane Doe", "jane@example.com", "$2a$secret-hash")
	user.Role = entity.RoleAdmin
	now := time.Now().UTC().Truncate(time.Second)
	user.LastLogin = &now

	require.NoError(t, c.Set(ctx, user))

	raw, err := mr.Get(identityKey(user.ID))
	require.NoError(t, err)
	assert.NotContains(t, raw, "secret-hash")
	assert.Equal(t, time.Minute, mr.TTL(identityKey(user.ID)))

	got, err := c.Get(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, entity.RoleAdmin, got.Role)
	assert.Equal(t, entity.StatusActive, got.Status)
	assert.Empty(t, got.PasswordHash)
	require.NotNil(t, got.LastLogin)
	assert.True(t, now.Equal(*got.LastLogin))

	require.NoError(t, c.Invalidate(ctx, user.ID))
	got, err = c.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisIdentityCache_SetAfterInvalidateIsSkipped(t *testing.T) {
	c, mr := setupIdentityCache(t, time.Minute)
	ctx := context.Background()

	stale := entity.NewUser("Jane Doe", "jane@example.com", "h")
	require.NoError(t, c.Invalidate(ctx, stale.ID))

	// A lookup that loaded the user before the write lands its Set after Invalidate.
	require.NoError(t, c.Set(ctx, stale))
	assert.False(t, mr.Exists(identityKey(stale.ID)))

	got, err := c.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	mr.FastForward(invalidationGuard + time.Second)

	require.NoError(t, c.Set(ctx, stale))
	assert.True(t, mr.Exists(identityKey(stale.ID)))
	assert.Equal(t, time.Minute, mr.TTL(identityKey(stale.ID)))
}

func TestRedisIdentityCache_Miss(t *testing.T) {
	c, _ := setupIdentityCache(t, time.Minute)

	got, err := c.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisIdentityCache_ExpiresAfterTTL(t *testing.T) {
	c, mr := setupIdentityCache(t, time.Minute)
	user := entity.NewUser("Jane Doe", "jane@example.com", "h")

	require.NoError(t, c.Set(context.Background(), user))
	mr.FastForward(2 * time.Minute)

	got, err := c.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisIdentityCache_CorruptEntryIsDropped(t *testing.T) {
	c, mr := setupIdentityCache(t, time.Minute)
	id := uuid.New()

	require.NoError(t, mr.Set(identityKey(id), "{not json"))

	_, err := c.Get(context.Background(), id)
	require.Error(t, err)
	assert.False(t, mr.Exists(identityKey(id)))
}

func TestRedisIdentityCache_Unavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })

	_, err := NewRedisIdentityCache(client, time.Minute).Get(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestNew_DisabledWithoutAddr(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	c := New(Params{
		Lifecycle: lc,
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.IsType(t, noopCache{}, c)

	got, err := c.Get(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Set(context.Background(), entity.NewUser("a", "b", "c")))
	assert.NoError(t, c.Invalidate(context.Background(), uuid.New()))
}

func TestNew_ConnectsOnStart(t *testing.T) {
	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)

	c := New(Params{
		Lifecycle: lc,
		Config:    &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr(), IdentityTTL: time.Minute}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	lc.RequireStart()
	defer lc.RequireStop()

	user := entity.NewUser("Jane Doe", "jane@example.com", "h")
	require.NoError(t, c.Set(context.Background(), user))
	assert.True(t, mr.Exists(identityKey(user.ID)))
}
