package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
	"github.com/redhat-data-and-ai/bookroster/pkg/logger"
	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

// RelationStore maintains the links between records: the company to
// employee cascade and the employee to book reading lists.
//
// Reading lists are sets of book keys per employee and list name. Deleted
// books stay in those sets; every read filters them against the book index.
// NOTE: This store does NOT handle locking - a cascade can miss an employee
// created concurrently for the company being deleted
type RelationStore struct {
	cache     cache.Cache
	employees recordSet
	books     recordSet
	emails    *UniqueIndex
}

// newRelationStore creates a new RelationStore instance
func newRelationStore(c cache.Cache, emails *UniqueIndex) *RelationStore {
	return &RelationStore{
		cache:     c,
		employees: recordSet{cache: c, kind: employeeKind},
		books:     recordSet{cache: c, kind: bookKind},
		emails:    emails,
	}
}

// CascadeDeleteCompany deletes every employee whose company is companyID and
// returns how many were removed. It scans the whole employee index.
func (s *RelationStore) CascadeDeleteCompany(ctx context.Context, companyID int64) (int, error) {
	employees, err := s.employees.loadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to scan employees for company %d: %w", companyID, err)
	}

	target := strconv.FormatInt(companyID, 10)
	removed := 0
	for _, rec := range employees {
		if rec.fields[fieldCompanyID] != target {
			continue
		}
		if err := removeEmployee(ctx, &s.employees, s.emails, rec.id, rec.fields); err != nil {
			return removed, err
		}
		removed++

		logger.Logger(ctx).WithFields(logrus.Fields{
			"company_id":  companyID,
			"employee_id": rec.id,
		}).Info("employee removed with company")
	}
	return removed, nil
}

// AddToList puts a book on one of an employee's lists. Both must exist;
// adding a book that is already listed is a no-op
func (s *RelationStore) AddToList(ctx context.Context, employeeID int64, list types.ListName, bookID int64) error {
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return err
	}
	live, err := s.books.indexed(ctx, bookID)
	if err != nil {
		return err
	}
	if !live {
		return fmt.Errorf("%w: book %d", ErrNotFound, bookID)
	}

	if err := s.cache.SAdd(ctx, readingListKey(employeeID, list), bookKind.key(bookID)); err != nil {
		return fmt.Errorf("failed to add book %d to %s list: %w", bookID, list, err)
	}

	logger.Logger(ctx).WithFields(logrus.Fields{
		"employee_id": employeeID,
		"list":        list,
		"book_id":     bookID,
	}).Info("book added to reading list")
	return nil
}

// RemoveFromList takes a book off an employee's list. Only the employee has
// to exist; removing a book that is not listed succeeds
func (s *RelationStore) RemoveFromList(ctx context.Context, employeeID int64, list types.ListName, bookID int64) error {
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return err
	}

	if err := s.cache.SRem(ctx, readingListKey(employeeID, list), bookKind.key(bookID)); err != nil {
		return fmt.Errorf("failed to remove book %d from %s list: %w", bookID, list, err)
	}

	logger.Logger(ctx).WithFields(logrus.Fields{
		"employee_id": employeeID,
		"list":        list,
		"book_id":     bookID,
	}).Info("book removed from reading list")
	return nil
}

// GetLists returns the live book ids on each of the employee's lists
func (s *RelationStore) GetLists(ctx context.Context, employeeID int64) (*types.ReadingLists, error) {
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	results := make([][]int64, len(types.ListNames))
	g, gctx := errgroup.WithContext(ctx)
	for i, list := range types.ListNames {
		g.Go(func() error {
			ids, err := s.liveBooks(gctx, employeeID, list)
			if err != nil {
				return err
			}
			results[i] = ids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lists := &types.ReadingLists{}
	for i, list := range types.ListNames {
		lists.Set(list, results[i])
	}
	return lists, nil
}

// GetList returns the live book ids on a single list
func (s *RelationStore) GetList(ctx context.Context, employeeID int64, list types.ListName) ([]int64, error) {
	if err := s.ensureEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.liveBooks(ctx, employeeID, list)
}

// liveBooks reads a list and keeps only books still in the book index.
// Stale entries are reported but left in storage.
func (s *RelationStore) liveBooks(ctx context.Context, employeeID int64, list types.ListName) ([]int64, error) {
	key := readingListKey(employeeID, list)
	members, err := s.cache.SMembers(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s list of employee %d: %w", list, employeeID, err)
	}

	ids := make([]int64, 0, len(members))
	for _, member := range members {
		bookID, err := bookKind.parseKey(member)
		if err != nil {
			reportDrift(ctx, bookKind.name, driftMalformedKey, key)
			continue
		}
		live, err := s.books.indexed(ctx, bookID)
		if err != nil {
			return nil, err
		}
		if !live {
			reportDrift(ctx, bookKind.name, driftStaleListEntry, key+"/"+member)
			continue
		}
		ids = append(ids, bookID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *RelationStore) ensureEmployee(ctx context.Context, employeeID int64) error {
	ok, err := s.employees.exists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: employee %d", ErrNotFound, employeeID)
	}
	return nil
}
