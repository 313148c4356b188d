package store

import (
	"context"
	"errors"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
	"github.com/redhat-data-and-ai/bookroster/pkg/logger"
	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

// AdminStore manages admin records. Admins have no unique attributes
type AdminStore struct {
	records   recordSet
	allocator *IDAllocator
}

// newAdminStore creates a new AdminStore instance
func newAdminStore(c cache.Cache, allocator *IDAllocator) *AdminStore {
	return &AdminStore{
		records:   recordSet{cache: c, kind: adminKind},
		allocator: allocator,
	}
}

func (s *AdminStore) Create(ctx context.Context, admin types.Admin) (int64, error) {
	if err := validateRecord(admin); err != nil {
		return 0, err
	}

	id, err := s.allocator.Allocate(ctx, adminKind)
	if err != nil {
		return 0, err
	}
	if err := s.records.insert(ctx, id, adminFields(admin)); err != nil {
		return 0, err
	}

	logger.Logger(ctx).WithField("admin_id", id).Info("admin created")
	return id, nil
}

func (s *AdminStore) Get(ctx context.Context, id int64) (*types.Admin, error) {
	fields, err := s.records.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return adminFromFields(id, fields), nil
}

func (s *AdminStore) List(ctx context.Context) ([]types.Admin, error) {
	stored, err := s.records.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	admins := make([]types.Admin, 0, len(stored))
	for _, rec := range stored {
		admins = append(admins, *adminFromFields(rec.id, rec.fields))
	}
	return admins, nil
}

func (s *AdminStore) Update(ctx context.Context, id int64, update types.AdminUpdate) (*types.Admin, error) {
	if err := validateRecord(update); err != nil {
		return nil, err
	}
	current, err := s.records.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name == nil {
		return adminFromFields(id, current), nil
	}

	updates := map[string]string{fieldName: *update.Name}
	if err := s.records.write(ctx, id, updates); err != nil {
		return nil, err
	}

	logger.Logger(ctx).WithField("admin_id", id).Info("admin updated")
	return adminFromFields(id, mergeFields(current, updates)), nil
}

// Delete removes the admin. Deleting an unknown id is a no-op
func (s *AdminStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.records.load(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.records.remove(ctx, id); err != nil {
		return err
	}

	logger.Logger(ctx).WithField("admin_id", id).Info("admin deleted")
	return nil
}
