package redis

import (
	"context"
	"time"

	redisclient "github.com/mahmudhasan/clothing-shop/cmd/redis"
)

// Repository defines the session store backing admin auth tokens
type Repository interface {
	SetSession(ctx context.Context, sessionID, adminID string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores a session with the admin identifier and TTL
func (r *redis) SetSession(ctx context.Context, sessionID, adminID string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Set(ctx, key, adminID, ttl).Err()
}

// GetSession retrieves the admin identifier for a session
func (r *redis) GetSession(ctx context.Context, sessionID string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	key := "session:" + sessionID
	return client.Get(ctx, key).Result()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Del(ctx, key).Err()
}
