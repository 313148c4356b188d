package store

import (
	"context"

	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/redhat-data-and-ai/bookroster/pkg/store CompanyStoreInterface,EmployeeStoreInterface,BookStoreInterface,AdminStoreInterface,RelationStoreInterface

// CompanyStoreInterface defines operations on company records
type CompanyStoreInterface interface {
	// Create stores a company and returns its allocated id
	// Returns ErrConflict if the name or email is already claimed
	Create(ctx context.Context, company types.Company) (int64, error)

	// Get returns the company or ErrNotFound
	Get(ctx context.Context, id int64) (*types.Company, error)

	// List returns every live company ordered by id
	List(ctx context.Context) ([]types.Company, error)

	// Update applies a partial update and returns the full record
	Update(ctx context.Context, id int64, update types.CompanyUpdate) (*types.Company, error)

	// Delete removes the company and all of its employees
	// Deleting an unknown id succeeds
	Delete(ctx context.Context, id int64) error
}

// EmployeeStoreInterface defines operations on employee records
type EmployeeStoreInterface interface {
	// Create stores an employee and returns its allocated id
	// Returns ErrNotFound if the company does not exist, ErrConflict if the email is claimed
	Create(ctx context.Context, employee types.Employee) (int64, error)

	// Get returns the employee or ErrNotFound
	Get(ctx context.Context, id int64) (*types.Employee, error)

	// List returns every live employee ordered by id
	List(ctx context.Context) ([]types.Employee, error)

	// Update applies a partial update and returns the full record
	// A new company id must reference an existing company
	Update(ctx context.Context, id int64, update types.EmployeeUpdate) (*types.Employee, error)

	// Delete removes the employee and its reading lists
	// Deleting an unknown id succeeds
	Delete(ctx context.Context, id int64) error
}

// BookStoreInterface defines operations on book records
type BookStoreInterface interface {
	Create(ctx context.Context, book types.Book) (int64, error)
	Get(ctx context.Context, id int64) (*types.Book, error)
	List(ctx context.Context) ([]types.Book, error)
	Update(ctx context.Context, id int64, update types.BookUpdate) (*types.Book, error)
	// Delete leaves references on reading lists in place
	Delete(ctx context.Context, id int64) error
}

// AdminStoreInterface defines operations on admin records
type AdminStoreInterface interface {
	Create(ctx context.Context, admin types.Admin) (int64, error)
	Get(ctx context.Context, id int64) (*types.Admin, error)
	List(ctx context.Context) ([]types.Admin, error)
	Update(ctx context.Context, id int64, update types.AdminUpdate) (*types.Admin, error)
	Delete(ctx context.Context, id int64) error
}

// RelationStoreInterface defines the employee to book reading list operations
type RelationStoreInterface interface {
	// CascadeDeleteCompany deletes every employee of the company and
	// returns how many were removed
	CascadeDeleteCompany(ctx context.Context, companyID int64) (int, error)

	// AddToList requires both the employee and the book to exist
	AddToList(ctx context.Context, employeeID int64, list types.ListName, bookID int64) error

	// RemoveFromList requires only the employee to exist
	RemoveFromList(ctx context.Context, employeeID int64, list types.ListName, bookID int64) error

	// GetLists returns all three lists with deleted books filtered out
	GetLists(ctx context.Context, employeeID int64) (*types.ReadingLists, error)

	// GetList returns one list with deleted books filtered out
	GetList(ctx context.Context, employeeID int64, list types.ListName) ([]int64, error)
}
