package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
	"github.com/redhat-data-and-ai/bookroster/pkg/logger"
	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

// EmployeeStore manages employee records
// An employee's company is checked when it is written, never afterwards
// NOTE: This store does NOT handle locking - callers must ensure proper synchronization
type EmployeeStore struct {
	records   recordSet
	companies recordSet
	allocator *IDAllocator
	emails    *UniqueIndex
}

// newEmployeeStore creates a new EmployeeStore instance
func newEmployeeStore(c cache.Cache, allocator *IDAllocator, emails *UniqueIndex) *EmployeeStore {
	return &EmployeeStore{
		records:   recordSet{cache: c, kind: employeeKind},
		companies: recordSet{cache: c, kind: companyKind},
		allocator: allocator,
		emails:    emails,
	}
}

// Create stores a new employee and returns its id
// Fails with ErrNotFound when the company does not exist and ErrConflict
// when the email is already claimed; nothing is written in either case
func (s *EmployeeStore) Create(ctx context.Context, employee types.Employee) (int64, error) {
	if err := validateRecord(employee); err != nil {
		return 0, err
	}
	if err := s.ensureCompany(ctx, employee.CompanyID); err != nil {
		return 0, err
	}
	if err := s.emails.ensureUnclaimed(ctx, employee.Email); err != nil {
		return 0, err
	}

	id, err := s.allocator.Allocate(ctx, employeeKind)
	if err != nil {
		return 0, err
	}
	if err := s.emails.Claim(ctx, employee.Email); err != nil {
		return 0, err
	}
	if err := s.records.insert(ctx, id, employeeFields(employee)); err != nil {
		return 0, err
	}

	logger.Logger(ctx).WithFields(logrus.Fields{
		"employee_id": id,
		"company_id":  employee.CompanyID,
	}).Info("employee created")
	return id, nil
}

func (s *EmployeeStore) Get(ctx context.Context, id int64) (*types.Employee, error) {
	fields, err := s.records.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return employeeFromFields(id, fields)
}

func (s *EmployeeStore) List(ctx context.Context) ([]types.Employee, error) {
	stored, err := s.records.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	employees := make([]types.Employee, 0, len(stored))
	for _, rec := range stored {
		employee, err := employeeFromFields(rec.id, rec.fields)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *employee)
	}
	return employees, nil
}

// Update overwrites only the attributes present in update
// A changed company id is validated before anything is written; resending
// the current one is not checked again
func (s *EmployeeStore) Update(ctx context.Context, id int64, update types.EmployeeUpdate) (*types.Employee, error) {
	if err := validateRecord(update); err != nil {
		return nil, err
	}
	current, err := s.records.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.CompanyID != nil && strconv.FormatInt(*update.CompanyID, 10) != current[fieldCompanyID] {
		if err := s.ensureCompany(ctx, *update.CompanyID); err != nil {
			return nil, err
		}
	}
	emailChanged := changed(update.Email, current[fieldEmail])
	if emailChanged {
		if err := s.emails.ensureUnclaimed(ctx, *update.Email); err != nil {
			return nil, err
		}
	}

	updates := employeeUpdateFields(update)
	if err := s.records.write(ctx, id, updates); err != nil {
		return nil, err
	}
	if emailChanged {
		if err := s.emails.move(ctx, current[fieldEmail], *update.Email); err != nil {
			return nil, err
		}
	}

	logger.Logger(ctx).WithField("employee_id", id).Info("employee updated")
	return employeeFromFields(id, mergeFields(current, updates))
}

// Delete removes the employee, frees its email and drops its reading lists
// Deleting an unknown id is a no-op
func (s *EmployeeStore) Delete(ctx context.Context, id int64) error {
	fields, err := s.records.load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := removeEmployee(ctx, &s.records, s.emails, id, fields); err != nil {
		return err
	}

	logger.Logger(ctx).WithField("employee_id", id).Info("employee deleted")
	return nil
}

// ensureCompany fails with ErrNotFound unless the company has a field-map
func (s *EmployeeStore) ensureCompany(ctx context.Context, companyID int64) error {
	ok, err := s.companies.exists(ctx, companyID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: company %d", ErrNotFound, companyID)
	}
	return nil
}

// removeEmployee releases the employee's email, then unindexes and deletes
// its field-map and reading lists. Shared by Delete and the company cascade.
func removeEmployee(ctx context.Context, records *recordSet, emails *UniqueIndex, id int64, fields map[string]string) error {
	if email := fields[fieldEmail]; email != "" {
		if err := emails.Release(ctx, email); err != nil {
			return err
		}
	}
	return records.remove(ctx, id, readingListKeys(id)...)
}
