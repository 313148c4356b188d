// Package types holds the record types exchanged with the store and the HTTP layer.
package types

import "fmt"

type Company struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name" validate:"required,notblank"`
	Address  string `json:"address" yaml:"address"`
	Email    string `json:"email" yaml:"email" validate:"required,notblank"`
	CompType string `json:"comp_type" yaml:"comp_type"`
}

// CompanyUpdate carries a partial update; nil fields are left untouched.
type CompanyUpdate struct {
	Name     *string `json:"name" validate:"omitempty,notblank"`
	Address  *string `json:"address"`
	Email    *string `json:"email" validate:"omitempty,notblank"`
	CompType *string `json:"comp_type"`
}

type Employee struct {
	ID          int64  `json:"id" yaml:"id"`
	FirstName   string `json:"first_name" yaml:"first_name" validate:"required,notblank"`
	LastName    string `json:"last_name" yaml:"last_name" validate:"required,notblank"`
	Email       string `json:"email" yaml:"email" validate:"required,notblank"`
	PhoneNumber string `json:"phone_number" yaml:"phone_number"`
	// CompanyID references a Company that existed when the employee was written.
	CompanyID int64 `json:"id_comp" yaml:"id_comp" validate:"required,gt=0"`
}

type EmployeeUpdate struct {
	FirstName   *string `json:"first_name" validate:"omitempty,notblank"`
	LastName    *string `json:"last_name" validate:"omitempty,notblank"`
	Email       *string `json:"email" validate:"omitempty,notblank"`
	PhoneNumber *string `json:"phone_number"`
	CompanyID   *int64  `json:"id_comp" validate:"omitempty,gt=0"`
}

type Book struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name" validate:"required,notblank"`
	Author      string `json:"author" yaml:"author"`
	Length      string `json:"length" yaml:"length"`
	PublishDate string `json:"publish_date" yaml:"publish_date"`
	Description string `json:"description" yaml:"description"`
	BookType    string `json:"book_type" yaml:"book_type"`
	Link        string `json:"link" yaml:"link"`
}

type BookUpdate struct {
	Name        *string `json:"name" validate:"omitempty,notblank"`
	Author      *string `json:"author"`
	Length      *string `json:"length"`
	PublishDate *string `json:"publish_date"`
	Description *string `json:"description"`
	BookType    *string `json:"book_type"`
	Link        *string `json:"link"`
}

type Admin struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name" validate:"required,notblank"`
}

type AdminUpdate struct {
	Name *string `json:"name" validate:"omitempty,notblank"`
}

// ListName names one of an employee's reading lists.
type ListName string

const (
	ListActive   ListName = "active"
	ListWishlist ListName = "wishlist"
	ListListened ListName = "listened"
)

// ListNames is every reading list an employee has, in response order.
var ListNames = []ListName{ListActive, ListWishlist, ListListened}

// ParseListName validates a list name taken from a request.
func ParseListName(s string) (ListName, error) {
	for _, name := range ListNames {
		if string(name) == s {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown reading list %q", s)
}

// ReadingLists holds the live book ids on each of an employee's lists.
type ReadingLists struct {
	Active   []int64 `json:"active"`
	Wishlist []int64 `json:"wishlist"`
	Listened []int64 `json:"listened"`
}

// Set stores ids under the named list.
func (r *ReadingLists) Set(name ListName, ids []int64) {
	switch name {
	case ListActive:
		r.Active = ids
	case ListWishlist:
		r.Wishlist = ids
	case ListListened:
		r.Listened = ids
	}
}

// Get returns the ids stored under the named list.
func (r *ReadingLists) Get(name ListName) []int64 {
	switch name {
	case ListActive:
		return r.Active
	case ListWishlist:
		return r.Wishlist
	case ListListened:
		return r.Listened
	}
	return nil
}
