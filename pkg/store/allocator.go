package store

import (
	"context"
	"fmt"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
)

// IDAllocator hands out per-kind ids from monotonic counters kept in the cache.
// Ids are never reclaimed. Uniqueness under concurrency relies on the
// counter increment being a single atomic cache operation.
type IDAllocator struct {
	cache cache.Cache
}

func NewIDAllocator(c cache.Cache) *IDAllocator {
	return &IDAllocator{cache: c}
}

// Allocate increments the kind's counter until the resulting key has no
// field-map, and returns that counter value.
func (a *IDAllocator) Allocate(ctx context.Context, k kind) (int64, error) {
	for {
		n, err := a.cache.Incr(ctx, k.counter)
		if err != nil {
			return 0, fmt.Errorf("failed to increment %s counter: %w", k.name, err)
		}

		taken, err := a.cache.Exists(ctx, k.key(n))
		if err != nil {
			return 0, fmt.Errorf("failed to check %s key: %w", k.name, err)
		}
		if !taken {
			return n, nil
		}
	}
}
