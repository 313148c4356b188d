package store

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
	"github.com/redhat-data-and-ai/bookroster/pkg/logger"
	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

// CompanyStore manages company records. Company names are unique, and
// company emails share the participant email index with employees.
// NOTE: This store does NOT handle locking - concurrent creates with the same
// name or email can both succeed
type CompanyStore struct {
	records   recordSet
	allocator *IDAllocator
	names     *UniqueIndex
	emails    *UniqueIndex
	relations *RelationStore
}

// newCompanyStore creates a new CompanyStore instance
func newCompanyStore(c cache.Cache, allocator *IDAllocator, emails *UniqueIndex, relations *RelationStore) *CompanyStore {
	return &CompanyStore{
		records:   recordSet{cache: c, kind: companyKind},
		allocator: allocator,
		names:     NewUniqueIndex(c, companyNamesKey, "company name"),
		emails:    emails,
		relations: relations,
	}
}

// Create stores a new company and returns its id
// Fails with ErrConflict when the name or email is already claimed
func (s *CompanyStore) Create(ctx context.Context, company types.Company) (int64, error) {
	if err := validateRecord(company); err != nil {
		return 0, err
	}
	if err := s.names.ensureUnclaimed(ctx, company.Name); err != nil {
		return 0, err
	}
	if err := s.emails.ensureUnclaimed(ctx, company.Email); err != nil {
		return 0, err
	}

	id, err := s.allocator.Allocate(ctx, companyKind)
	if err != nil {
		return 0, err
	}
	if err := s.names.Claim(ctx, company.Name); err != nil {
		return 0, err
	}
	if err := s.emails.Claim(ctx, company.Email); err != nil {
		return 0, err
	}
	if err := s.records.insert(ctx, id, companyFields(company)); err != nil {
		return 0, err
	}

	logger.Logger(ctx).WithFields(logrus.Fields{
		"company_id": id,
		"name":       company.Name,
	}).Info("company created")
	return id, nil
}

func (s *CompanyStore) Get(ctx context.Context, id int64) (*types.Company, error) {
	fields, err := s.records.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return companyFromFields(id, fields), nil
}

func (s *CompanyStore) List(ctx context.Context) ([]types.Company, error) {
	stored, err := s.records.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	companies := make([]types.Company, 0, len(stored))
	for _, rec := range stored {
		companies = append(companies, *companyFromFields(rec.id, rec.fields))
	}
	return companies, nil
}

// Update overwrites only the attributes present in update
// A changed name or email is checked against its index and the claim is moved
func (s *CompanyStore) Update(ctx context.Context, id int64, update types.CompanyUpdate) (*types.Company, error) {
	if err := validateRecord(update); err != nil {
		return nil, err
	}
	current, err := s.records.load(ctx, id)
	if err != nil {
		return nil, err
	}

	nameChanged := changed(update.Name, current[fieldName])
	emailChanged := changed(update.Email, current[fieldEmail])
	if nameChanged {
		if err := s.names.ensureUnclaimed(ctx, *update.Name); err != nil {
			return nil, err
		}
	}
	if emailChanged {
		if err := s.emails.ensureUnclaimed(ctx, *update.Email); err != nil {
			return nil, err
		}
	}

	updates := companyUpdateFields(update)
	if err := s.records.write(ctx, id, updates); err != nil {
		return nil, err
	}
	if nameChanged {
		if err := s.names.move(ctx, current[fieldName], *update.Name); err != nil {
			return nil, err
		}
	}
	if emailChanged {
		if err := s.emails.move(ctx, current[fieldEmail], *update.Email); err != nil {
			return nil, err
		}
	}

	logger.Logger(ctx).WithField("company_id", id).Info("company updated")
	return companyFromFields(id, mergeFields(current, updates)), nil
}

// Delete removes the company, frees its name and email, and deletes every
// employee that references it. Deleting an unknown id is a no-op
func (s *CompanyStore) Delete(ctx context.Context, id int64) error {
	fields, err := s.records.load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.names.Release(ctx, fields[fieldName]); err != nil {
		return err
	}
	if err := s.emails.Release(ctx, fields[fieldEmail]); err != nil {
		return err
	}
	if err := s.records.remove(ctx, id); err != nil {
		return err
	}

	removed, err := s.relations.CascadeDeleteCompany(ctx, id)
	if err != nil {
		return err
	}

	logger.Logger(ctx).WithFields(logrus.Fields{
		"company_id":        id,
		"employees_removed": removed,
	}).Info("company deleted")
	return nil
}
