package store

import (
	"context"
	"fmt"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
)

// UniqueIndex is a set of attribute values claimed by live records.
// Check and Claim are separate cache calls, so two writers can both pass
// Check for the same value before either claims it.
type UniqueIndex struct {
	cache cache.Cache
	key   string
	label string
}

func NewUniqueIndex(c cache.Cache, key, label string) *UniqueIndex {
	return &UniqueIndex{cache: c, key: key, label: label}
}

// Check reports whether value is already claimed.
func (u *UniqueIndex) Check(ctx context.Context, value string) (bool, error) {
	claimed, err := u.cache.SIsMember(ctx, u.key, value)
	if err != nil {
		return false, fmt.Errorf("failed to check %s index: %w", u.label, err)
	}
	return claimed, nil
}

func (u *UniqueIndex) Claim(ctx context.Context, value string) error {
	if err := u.cache.SAdd(ctx, u.key, value); err != nil {
		return fmt.Errorf("failed to claim %s %q: %w", u.label, value, err)
	}
	return nil
}

func (u *UniqueIndex) Release(ctx context.Context, value string) error {
	if err := u.cache.SRem(ctx, u.key, value); err != nil {
		return fmt.Errorf("failed to release %s %q: %w", u.label, value, err)
	}
	return nil
}

// ensureUnclaimed returns ErrConflict when value is taken.
func (u *UniqueIndex) ensureUnclaimed(ctx context.Context, value string) error {
	claimed, err := u.Check(ctx, value)
	if err != nil {
		return err
	}
	if claimed {
		return fmt.Errorf("%w: %s %q", ErrConflict, u.label, value)
	}
	return nil
}

// move releases oldValue and claims newValue. No-op when they are equal.
func (u *UniqueIndex) move(ctx context.Context, oldValue, newValue string) error {
	if oldValue == newValue {
		return nil
	}
	if err := u.Release(ctx, oldValue); err != nil {
		return err
	}
	return u.Claim(ctx, newValue)
}
