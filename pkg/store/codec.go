package store

import (
	"fmt"
	"strconv"

	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

// Records are stored as flat string field-maps. These helpers are the only
// place the field names appear.

const (
	fieldName        = "name"
	fieldAddress     = "address"
	fieldEmail       = "email"
	fieldCompType    = "comp_type"
	fieldFirstName   = "first_name"
	fieldLastName    = "last_name"
	fieldPhoneNumber = "phone_number"
	fieldCompanyID   = "id_comp"
	fieldAuthor      = "author"
	fieldLength      = "length"
	fieldPublishDate = "publish_date"
	fieldDescription = "description"
	fieldBookType    = "book_type"
	fieldLink        = "link"
)

func companyFields(c types.Company) map[string]string {
	return map[string]string{
		fieldName:     c.Name,
		fieldAddress:  c.Address,
		fieldEmail:    c.Email,
		fieldCompType: c.CompType,
	}
}

func companyFromFields(id int64, f map[string]string) *types.Company {
	return &types.Company{
		ID:       id,
		Name:     f[fieldName],
		Address:  f[fieldAddress],
		Email:    f[fieldEmail],
		CompType: f[fieldCompType],
	}
}

func companyUpdateFields(u types.CompanyUpdate) map[string]string {
	fields := make(map[string]string)
	setIfPresent(fields, fieldName, u.Name)
	setIfPresent(fields, fieldAddress, u.Address)
	setIfPresent(fields, fieldEmail, u.Email)
	setIfPresent(fields, fieldCompType, u.CompType)
	return fields
}

func employeeFields(e types.Employee) map[string]string {
	return map[string]string{
		fieldFirstName:   e.FirstName,
		fieldLastName:    e.LastName,
		fieldEmail:       e.Email,
		fieldPhoneNumber: e.PhoneNumber,
		fieldCompanyID:   strconv.FormatInt(e.CompanyID, 10),
	}
}

func employeeFromFields(id int64, f map[string]string) (*types.Employee, error) {
	companyID, err := strconv.ParseInt(f[fieldCompanyID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("employee %d has malformed %s %q: %w", id, fieldCompanyID, f[fieldCompanyID], err)
	}
	return &types.Employee{
		ID:          id,
		FirstName:   f[fieldFirstName],
		LastName:    f[fieldLastName],
		Email:       f[fieldEmail],
		PhoneNumber: f[fieldPhoneNumber],
		CompanyID:   companyID,
	}, nil
}

func employeeUpdateFields(u types.EmployeeUpdate) map[string]string {
	fields := make(map[string]string)
	setIfPresent(fields, fieldFirstName, u.FirstName)
	setIfPresent(fields, fieldLastName, u.LastName)
	setIfPresent(fields, fieldEmail, u.Email)
	setIfPresent(fields, fieldPhoneNumber, u.PhoneNumber)
	if u.CompanyID != nil {
		fields[fieldCompanyID] = strconv.FormatInt(*u.CompanyID, 10)
	}
	return fields
}

func bookFields(b types.Book) map[string]string {
	return map[string]string{
		fieldName:        b.Name,
		fieldAuthor:      b.Author,
		fieldLength:      b.Length,
		fieldPublishDate: b.PublishDate,
		fieldDescription: b.Description,
		fieldBookType:    b.BookType,
		fieldLink:        b.Link,
	}
}

func bookFromFields(id int64, f map[string]string) *types.Book {
	return &types.Book{
		ID:          id,
		Name:        f[fieldName],
		Author:      f[fieldAuthor],
		Length:      f[fieldLength],
		PublishDate: f[fieldPublishDate],
		Description: f[fieldDescription],
		BookType:    f[fieldBookType],
		Link:        f[fieldLink],
	}
}

func bookUpdateFields(u types.BookUpdate) map[string]string {
	fields := make(map[string]string)
	setIfPresent(fields, fieldName, u.Name)
	setIfPresent(fields, fieldAuthor, u.Author)
	setIfPresent(fields, fieldLength, u.Length)
	setIfPresent(fields, fieldPublishDate, u.PublishDate)
	setIfPresent(fields, fieldDescription, u.Description)
	setIfPresent(fields, fieldBookType, u.BookType)
	setIfPresent(fields, fieldLink, u.Link)
	return fields
}

func adminFields(a types.Admin) map[string]string {
	return map[string]string{fieldName: a.Name}
}

func adminFromFields(id int64, f map[string]string) *types.Admin {
	return &types.Admin{ID: id, Name: f[fieldName]}
}

// mergeFields overlays updates on a copy of current.
func mergeFields(current, updates map[string]string) map[string]string {
	merged := make(map[string]string, len(current)+len(updates))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range updates {
		merged[k] = v
	}
	return merged
}
