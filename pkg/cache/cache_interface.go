package cache

import (
	"context"
	"errors"
	"time"
)

// ErrDisabled is returned by Ping when no cache backend is configured.
var ErrDisabled = errors.New("cache disabled")

// Cache is the read-through cache used by the public listing endpoints.
// Implementations: Redis, or Nop when REDIS_HOST is empty.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found = false on a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value with a TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern, e.g. "rates:active:*".
	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error
}

// Nop is a Cache that never stores anything.
type Nop struct{}

// NewNop returns a cache that always misses.
func NewNop() Cache {
	return Nop{}
}

func (Nop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (Nop) Delete(context.Context, ...string) error { return nil }
func (Nop) DeletePattern(context.Context, string) error { return nil }
func (Nop) Ping(context.Context) error { return ErrDisabled }
