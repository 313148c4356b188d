// Package inmemory is a process-local cache driver backed by patrickmn/go-cache.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var (
	// ErrKeyNotFound is returned by Get for a missing key.
	ErrKeyNotFound = errors.New("inmemory: key not found")

	// ErrWrongType is returned when an operation targets a key holding another kind of value.
	ErrWrongType = errors.New("inmemory: operation against a key holding the wrong kind of value")
)

// Config holds expiry settings in seconds. A negative value disables
// expiry or cleanup respectively.
type Config struct {
	DefaultExpiration int32 `mapstructure:"defaultExpiration" yaml:"defaultExpiration"`
	CleanupInterval   int32 `mapstructure:"cleanupInterval" yaml:"cleanupInterval"`
}

type hash map[string]string

type set map[string]struct{}

// Cache keeps scalars, hashes and sets in a go-cache instance. Compound
// read-modify-write operations are serialized by mu so each method is atomic.
type Cache struct {
	store *gocache.Cache
	mu    sync.Mutex
}

// NewCache creates an in-memory cache. A nil config disables expiry.
func NewCache(cfg *Config) (*Cache, error) {
	if cfg == nil {
		cfg = &Config{DefaultExpiration: -1, CleanupInterval: -1}
	}

	return &Cache{
		store: gocache.New(seconds(cfg.DefaultExpiration), seconds(cfg.CleanupInterval)),
	}, nil
}

func seconds(v int32) time.Duration {
	if v < 0 {
		return gocache.NoExpiration
	}
	return time.Duration(v) * time.Second
}

func expiry(d time.Duration) time.Duration {
	if d <= 0 {
		return gocache.NoExpiration
	}
	return d
}

func (c *Cache) Get(_ context.Context, key string) (string, error) {
	val, found := c.store.Get(key)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrWrongType, key)
	}
	return s, nil
}

func (c *Cache) Set(_ context.Context, key, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Set(key, value, expiry(expiration))
	return nil
}

func (c *Cache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var current int64
	if val, found := c.store.Get(key); found {
		s, ok := val.(string)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrWrongType, key)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("value at %s is not an integer: %w", key, err)
		}
		current = n
	}

	current++
	c.store.Set(key, strconv.FormatInt(current, 10), gocache.NoExpiration)
	return current, nil
}

func (c *Cache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		c.store.Delete(key)
	}
	return nil
}

func (c *Cache) Exists(_ context.Context, key string) (bool, error) {
	_, found := c.store.Get(key)
	return found, nil
}

func (c *Cache) HGetAll(_ context.Context, key string) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, err := c.hash(key)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out, nil
}

func (c *Cache) HSet(_ context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	h, err := c.hash(key)
	if err != nil {
		return err
	}
	if h == nil {
		h = make(hash, len(fields))
	}
	for k, v := range fields {
		h[k] = v
	}
	c.store.Set(key, h, gocache.NoExpiration)
	return nil
}

func (c *Cache) HDel(_ context.Context, key string, fields ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, err := c.hash(key)
	if err != nil || h == nil {
		return err
	}
	for _, f := range fields {
		delete(h, f)
	}
	// an empty hash does not exist, same as redis
	if len(h) == 0 {
		c.store.Delete(key)
	}
	return nil
}

func (c *Cache) SAdd(_ context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.set(key)
	if err != nil {
		return err
	}
	if s == nil {
		s = make(set, len(members))
	}
	for _, m := range members {
		s[m] = struct{}{}
	}
	c.store.Set(key, s, gocache.NoExpiration)
	return nil
}

func (c *Cache) SRem(_ context.Context, key string, members ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.set(key)
	if err != nil || s == nil {
		return err
	}
	for _, m := range members {
		delete(s, m)
	}
	if len(s) == 0 {
		c.store.Delete(key)
	}
	return nil
}

func (c *Cache) SIsMember(_ context.Context, key, member string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.set(key)
	if err != nil {
		return false, err
	}
	_, ok := s[member]
	return ok, nil
}

func (c *Cache) SMembers(_ context.Context, key string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.set(key)
	if err != nil {
		return nil, err
	}

	members := make([]string, 0, len(s))
	for m := range s {
		members = append(members, m)
	}
	return members, nil
}

func (c *Cache) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op; the process-local store holds no connections.
func (c *Cache) Close() error {
	return nil
}

// hash returns the live hash at key, nil when absent. Caller holds mu.
func (c *Cache) hash(key string) (hash, error) {
	val, found := c.store.Get(key)
	if !found {
		return nil, nil
	}
	h, ok := val.(hash)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWrongType, key)
	}
	return h, nil
}

// set returns the live set at key, nil when absent. Caller holds mu.
func (c *Cache) set(key string) (set, error) {
	val, found := c.store.Get(key)
	if !found {
		return nil, nil
	}
	s, ok := val.(set)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWrongType, key)
	}
	return s, nil
}
