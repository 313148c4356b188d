// Package store keeps companies, employees, books and admins in a schemaless
// key-value cache and enforces their relational rules in application code:
// allocated ids, unique names and emails, company references, cascading
// company deletes and employee reading lists.
package store

import (
	"context"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
)

// Store groups the per-kind record stores over one shared cache
// NOTE: No operation here is transactional - each is a short sequence of
// independent cache calls, and callers may observe the intermediate states
type Store struct {
	Company   CompanyStoreInterface
	Employee  EmployeeStoreInterface
	Book      BookStoreInterface
	Admin     AdminStoreInterface
	Relations RelationStoreInterface

	cache cache.Cache
}

// New creates a new Store instance with all sub-stores initialized
func New(c cache.Cache) *Store {
	allocator := NewIDAllocator(c)
	emails := NewUniqueIndex(c, emailsKey, "email")
	relations := newRelationStore(c, emails)

	return &Store{
		Company:   newCompanyStore(c, allocator, emails, relations),
		Employee:  newEmployeeStore(c, allocator, emails),
		Book:      newBookStore(c, allocator),
		Admin:     newAdminStore(c, allocator),
		Relations: relations,
		cache:     c,
	}
}

// Ping checks that the backing cache is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

// Close releases the backing cache
func (s *Store) Close() error {
	return s.cache.Close()
}

// Compile-time interface compliance checks
var (
	_ CompanyStoreInterface  = (*CompanyStore)(nil)
	_ EmployeeStoreInterface = (*EmployeeStore)(nil)
	_ BookStoreInterface     = (*BookStore)(nil)
	_ AdminStoreInterface    = (*AdminStore)(nil)
	_ RelationStoreInterface = (*RelationStore)(nil)
)
