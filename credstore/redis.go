package credstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable is an exported constant or variable used by the authentication client.
var ErrRedisUnavailable = errors.New("credstore redis unavailable")

// Redis is a Store backed by a Redis keyspace, for callers that share one
// credential profile across processes (a CLI fleet, a sidecar, tests).
// Both slots live under keyPrefix and carry no TTL: expiry is the token's
// own exp claim, enforced by the session layer, not by Redis.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis describes the newredis operation and its observable behavior.
func NewRedis(client redis.UniversalClient, keyPrefix string) *Redis {
	if keyPrefix == "" {
		keyPrefix = "goauthclient"
	}
	return &Redis{client: client, prefix: keyPrefix}
}

func (r *Redis) tokenKey() string      { return r.prefix + ":token" }
func (r *Redis) identifierKey() string { return r.prefix + ":identifier" }

// SaveToken implements Store.
func (r *Redis) SaveToken(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.tokenKey(), token, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// LoadToken implements Store.
func (r *Redis) LoadToken(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, r.tokenKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return val, nil
}

// ClearToken implements Store.
func (r *Redis) ClearToken(ctx context.Context) error {
	if err := r.client.Del(ctx, r.tokenKey()).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// RememberIdentifier implements Store.
func (r *Redis) RememberIdentifier(ctx context.Context, email string) error {
	if err := r.client.Set(ctx, r.identifierKey(), email, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// LoadIdentifier implements Store.
func (r *Redis) LoadIdentifier(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, r.identifierKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrIdentifierNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return val, nil
}

// ForgetIdentifier implements Store.
func (r *Redis) ForgetIdentifier(ctx context.Context) error {
	if err := r.client.Del(ctx, r.identifierKey()).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
