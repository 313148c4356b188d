package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
	"github.com/redhat-data-and-ai/bookroster/pkg/logger"
	"github.com/redhat-data-and-ai/bookroster/pkg/telemetry"
)

// fetchConcurrency bounds parallel HGETALLs during full index scans.
const fetchConcurrency = 8

// drift reasons
const (
	driftGhostIndexEntry = "ghost_index_entry"
	driftMalformedKey    = "malformed_index_key"
	driftStaleListEntry  = "stale_reading_list_entry"
)

// storedRecord is a field-map together with the id it is stored under.
type storedRecord struct {
	id     int64
	fields map[string]string
}

// recordSet holds the field-maps and index set of a single kind.
type recordSet struct {
	cache cache.Cache
	kind  kind
}

// load returns the field-map for id, or ErrNotFound when it is absent or empty.
func (r *recordSet) load(ctx context.Context, id int64) (map[string]string, error) {
	fields, err := r.cache.HGetAll(ctx, r.kind.key(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", r.kind.name, id, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, r.kind.name, id)
	}
	return fields, nil
}

func (r *recordSet) exists(ctx context.Context, id int64) (bool, error) {
	ok, err := r.cache.Exists(ctx, r.kind.key(id))
	if err != nil {
		return false, fmt.Errorf("failed to check %s %d: %w", r.kind.name, id, err)
	}
	return ok, nil
}

// indexed reports whether the key of id is in the kind's index set.
func (r *recordSet) indexed(ctx context.Context, id int64) (bool, error) {
	ok, err := r.cache.SIsMember(ctx, r.kind.index, r.kind.key(id))
	if err != nil {
		return false, fmt.Errorf("failed to check %s index: %w", r.kind.name, err)
	}
	return ok, nil
}

// insert writes the field-map and then adds its key to the index set.
func (r *recordSet) insert(ctx context.Context, id int64, fields map[string]string) error {
	key := r.kind.key(id)
	if err := r.cache.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to write %s %d: %w", r.kind.name, id, err)
	}
	if err := r.cache.SAdd(ctx, r.kind.index, key); err != nil {
		return fmt.Errorf("failed to index %s %d: %w", r.kind.name, id, err)
	}
	return nil
}

func (r *recordSet) write(ctx context.Context, id int64, fields map[string]string) error {
	if err := r.cache.HSet(ctx, r.kind.key(id), fields); err != nil {
		return fmt.Errorf("failed to update %s %d: %w", r.kind.name, id, err)
	}
	return nil
}

// remove drops the key from the index set and then deletes the field-map
// along with any extra keys owned by the record.
func (r *recordSet) remove(ctx context.Context, id int64, owned ...string) error {
	key := r.kind.key(id)
	if err := r.cache.SRem(ctx, r.kind.index, key); err != nil {
		return fmt.Errorf("failed to unindex %s %d: %w", r.kind.name, id, err)
	}
	if err := r.cache.Delete(ctx, append([]string{key}, owned...)...); err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", r.kind.name, id, err)
	}
	return nil
}

// loadAll enumerates the index set and fetches every field-map. Index
// entries without a field-map are skipped and reported as drift. Results
// are ordered by id.
func (r *recordSet) loadAll(ctx context.Context) ([]storedRecord, error) {
	keys, err := r.cache.SMembers(ctx, r.kind.index)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s index: %w", r.kind.name, err)
	}

	results := make([]storedRecord, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, key := range keys {
		g.Go(func() error {
			id, err := r.kind.parseKey(key)
			if err != nil {
				reportDrift(gctx, r.kind.name, driftMalformedKey, key)
				return nil
			}
			fields, err := r.cache.HGetAll(gctx, key)
			if err != nil {
				return fmt.Errorf("failed to get %s %d: %w", r.kind.name, id, err)
			}
			if len(fields) == 0 {
				reportDrift(gctx, r.kind.name, driftGhostIndexEntry, key)
				return nil
			}
			results[i] = storedRecord{id: id, fields: fields}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	live := results[:0]
	for _, rec := range results {
		if rec.fields != nil {
			live = append(live, rec)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].id < live[j].id })
	return live, nil
}

// reportDrift logs and counts a dangling reference that was skipped on read.
func reportDrift(ctx context.Context, kindName, reason, key string) {
	logger.Logger(ctx).WithFields(logrus.Fields{
		"kind":   kindName,
		"reason": reason,
		"key":    key,
	}).Warn("skipping dangling reference")
	telemetry.GetStoreMetrics().RecordIntegrityDrift(ctx, kindName, reason)
}

// validate checks the `validate` tags on records and partial updates.
// Field names in errors come from the json tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRecord runs the struct validation on a record or update and
// wraps any failure as ErrValidation naming the offending fields.
func validateRecord(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("%w: invalid fields: %s", ErrValidation, strings.Join(fields, ", "))
}

// setIfPresent copies *src into fields[name] when src is non-nil.
func setIfPresent(fields map[string]string, name string, src *string) {
	if src != nil {
		fields[name] = *src
	}
}

// changed reports whether an update pointer carries a value different from current.
func changed(update *string, current string) bool {
	return update != nil && *update != current
}
