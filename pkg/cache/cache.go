// Package cache defines the key-value store adapter used by the record store.
//
// Every method is expected to be atomic on its own. No method offers
// atomicity across calls, so callers compose multi-step operations
// knowing that other writers may interleave between them.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache/inmemory"
	"github.com/redhat-data-and-ai/bookroster/pkg/cache/redis"
)

// NoExpiration keeps a scalar value until it is deleted.
const NoExpiration time.Duration = 0

// ErrUnsupportedDriver is returned by New for an unknown driver name.
var ErrUnsupportedDriver = errors.New("unsupported cache driver")

// Compile-time interface compliance checks
var (
	_ Cache = (*inmemory.Cache)(nil)
	_ Cache = (*redis.Cache)(nil)
)

// IsKeyNotFound reports whether err is a driver's missing-key error from Get.
func IsKeyNotFound(err error) bool {
	return errors.Is(err, inmemory.ErrKeyNotFound) || errors.Is(err, redis.ErrKeyNotFound)
}

// Cache is the narrow set of primitives the store depends on: scalars,
// hash field-maps and unordered string sets.
type Cache interface {
	// Get returns the scalar stored at key. A missing key yields an error
	// for which IsKeyNotFound is true.
	Get(ctx context.Context, key string) (string, error)
	// Set stores a scalar value at key.
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	// Incr increments the integer at key by one and returns the new value.
	// A missing key counts as zero.
	Incr(ctx context.Context, key string) (int64, error)
	// Delete removes keys of any type. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	// Exists reports whether key holds any value.
	Exists(ctx context.Context, key string) (bool, error)

	// HGetAll returns every field of the hash at key, or an empty map.
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	// HSet writes the given fields into the hash at key.
	HSet(ctx context.Context, key string, fields map[string]string) error
	// HDel removes fields from the hash at key.
	HDel(ctx context.Context, key string, fields ...string) error

	// SAdd adds members to the set at key.
	SAdd(ctx context.Context, key string, members ...string) error
	// SRem removes members from the set at key.
	SRem(ctx context.Context, key string, members ...string) error
	// SIsMember reports whether member is in the set at key.
	SIsMember(ctx context.Context, key, member string) (bool, error)
	// SMembers returns the members of the set at key in no particular order.
	SMembers(ctx context.Context, key string) ([]string, error)

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
	// Close releases connections held by the driver.
	Close() error
}

// Config selects and configures a cache driver.
type Config struct {
	Driver   string           `mapstructure:"driver" yaml:"driver"`
	InMemory *inmemory.Config `mapstructure:"inmemory" yaml:"inmemory"`
	Redis    *redis.Config    `mapstructure:"redis" yaml:"redis"`
}

// New creates the cache driver named by cfg.Driver.
func New(cfg *Config) (Cache, error) {
	if cfg == nil {
		return nil, errors.New("cache config is required")
	}

	switch cfg.Driver {
	case "memory", "inmemory":
		c, err := inmemory.NewCache(cfg.InMemory)
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory cache: %w", err)
		}
		return c, nil
	case "redis":
		c, err := redis.NewCache(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis cache: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}
