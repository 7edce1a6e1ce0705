// Package cache provides the Redis-backed identity cache used when resolving session tokens.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"usermgmt/config"
	"usermgmt/internal/domain/entity"
	"usermgmt/internal/domain/lifecycle"
	"usermgmt/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "usermgmt:identity:"

// invalidationGuard bounds how long a lookup that started before an invalidation may still be
// in flight. It matches the default request timeout.
const invalidationGuard = 30 * time.Second

// setUnlessInvalidated writes KEYS[1] only when no invalidation marker (KEYS[2]) is live, so a
// lookup that read the store before a write cannot repopulate the entry after Invalidate.
var setUnlessInvalidated = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
if tonumber(ARGV[2]) > 0 then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
else
	redis.call("SET", KEYS[1], ARGV[1])
end
return 1
`)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis identity cache, or a no-op cache when redis.addr is not configured.
func New(params Params) service.IdentityCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Identity cache disabled")

		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.InfoContext(ctx, "Identity cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisIdentityCache(client, cfg.IdentityTTL)
}

// cachedIdentity is the stored form of a user. The password hash is deliberately absent.
type cachedIdentity struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type redisIdentityCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisIdentityCache(client redis.UniversalClient, ttl time.Duration) service.IdentityCache {
	return &redisIdentityCache{client: client, ttl: ttl}
}

// Both keys of one user share a hash slot so the script and transaction stay cluster safe.
func identityKey(userID uuid.UUID) string {
	return keyPrefix + "{" + userID.String() + "}"
}

func invalidatedKey(userID uuid.UUID) string {
	return identityKey(userID) + ":invalidated"
}

// Get returns nil, nil on a miss. Entries that fail to decode are dropped.
func (c *redisIdentityCache) Get(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	key := identityKey(userID)

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get identity")
	}

	var cached cachedIdentity
	if err := json.Unmarshal(data, &cached); err != nil {
		c.client.Del(ctx, key)

		return nil, errors.Wrap(err, "decode cached identity")
	}

	return &entity.User{
		ID:        cached.ID,
		FullName:  cached.FullName,
		Email:     cached.Email,
		Role:      entity.Role(cached.Role),
		Status:    entity.Status(cached.Status),
		LastLogin: cached.LastLogin,
		CreatedAt: cached.CreatedAt,
		UpdatedAt: cached.UpdatedAt,
	}, nil
}

// Set is skipped while an invalidation marker for the user is live.
func (c *redisIdentityCache) Set(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(cachedIdentity{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role.String(),
		Status:    user.Status.String(),
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "encode identity")
	}

	keys := []string{identityKey(user.ID), invalidatedKey(user.ID)}
	err = setUnlessInvalidated.Run(ctx, c.client, keys, data, c.ttl.Milliseconds()).Err()

	return errors.Wrap(err, "redis set identity")
}

// Invalidate drops the entry and blocks repopulation for invalidationGuard.
func (c *redisIdentityCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, identityKey(userID))
		pipe.Set(ctx, invalidatedKey(userID), 1, invalidationGuard)

		return nil
	})

	return errors.Wrap(err, "redis invalidate identity")
}

type noopCache struct{}

func (noopCache) Get(context.Context, uuid.UUID) (*entity.User, error) { return nil, nil }

func (noopCache) Set(context.Context, *entity.User) error { return nil }

func (noopCache) Invalidate(context.Context, uuid.UUID) error { return nil }
