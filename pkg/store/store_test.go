package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

func TestNew(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store, _ cache.Cache) {
		require.NotNil(t, s.Company)
		require.NotNil(t, s.Employee)
		require.NotNil(t, s.Book)
		require.NotNil(t, s.Admin)
		require.NotNil(t, s.Relations)
		assert.NoError(t, s.Ping(testContext(t)))
	})
}

func TestStore_EmailIndexIsShared(t *testing.T) {
	s, c := setupStore(t)
	ctx := testContext(t)
	compID := mustCreateCompany(t, s, acme())
	empID := mustCreateEmployee(t, s, employeeOf(compID, "wile@acme.io"))

	_, err := s.Company.Create(ctx, types.Company{Name: "Globex", Email: "wile@acme.io"})
	assert.ErrorIs(t, err, ErrConflict)

	// freeing the employee email makes it usable by a company
	require.NoError(t, s.Employee.Delete(ctx, empID))
	_, err = s.Company.Create(ctx, types.Company{Name: "Globex", Email: "wile@acme.io"})
	require.NoError(t, err)

	members, err := c.SMembers(ctx, emailsKey)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"contact@acme.io", "wile@acme.io"}, members)
}

func TestStore_IDsAreNeverReused(t *testing.T) {
	s, _ := setupStore(t)
	ctx := testContext(t)

	first := mustCreateBook(t, s, dune())
	require.NoError(t, s.Book.Delete(ctx, first))
	second := mustCreateBook(t, s, dune())
	assert.Greater(t, second, first)
}

func TestStore_UpdateRejectsBlankValues(t *testing.T) {
	s, _ := setupStore(t)
	ctx := testContext(t)
	compID := mustCreateCompany(t, s, acme())
	empID := mustCreateEmployee(t, s, employeeOf(compID, "wile@acme.io"))
	bookID := mustCreateBook(t, s, dune())
	adminID, err := s.Admin.Create(ctx, types.Admin{Name: "root"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		update func() error
		check  func(t *testing.T)
	}{
		{
			name: "company name",
			update: func() error {
				_, err := s.Company.Update(ctx, compID, types.CompanyUpdate{Name: ptr("   ")})
				return err
			},
			check: func(t *testing.T) {
				got, err := s.Company.Get(ctx, compID)
				require.NoError(t, err)
				assert.Equal(t, "Acme", got.Name)
			},
		},
		{
			name: "company email",
			update: func() error {
				_, err := s.Company.Update(ctx, compID, types.CompanyUpdate{Email: ptr("\t")})
				return err
			},
			check: func(t *testing.T) {
				got, err := s.Company.Get(ctx, compID)
				require.NoError(t, err)
				assert.Equal(t, "contact@acme.io", got.Email)
			},
		},
		{
			name: "employee last name",
			update: func() error {
				_, err := s.Employee.Update(ctx, empID, types.EmployeeUpdate{LastName: ptr(" "), PhoneNumber: ptr("0711111111")})
				return err
			},
			check: func(t *testing.T) {
				got, err := s.Employee.Get(ctx, empID)
				require.NoError(t, err)
				assert.Equal(t, "Coyote", got.LastName)
				assert.Equal(t, "0700000000", got.PhoneNumber)
			},
		},
		{
			name: "book name",
			update: func() error {
				_, err := s.Book.Update(ctx, bookID, types.BookUpdate{Name: ptr("  ")})
				return err
			},
			check: func(t *testing.T) {
				got, err := s.Book.Get(ctx, bookID)
				require.NoError(t, err)
				assert.Equal(t, "Dune", got.Name)
			},
		},
		{
			name: "admin name",
			update: func() error {
				_, err := s.Admin.Update(ctx, adminID, types.AdminUpdate{Name: ptr("   ")})
				return err
			},
			check: func(t *testing.T) {
				got, err := s.Admin.Get(ctx, adminID)
				require.NoError(t, err)
				assert.Equal(t, "root", got.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.update(), ErrValidation)
			tt.check(t)
		})
	}
}

func TestStore_Close(t *testing.T) {
	t.Run("inmemory", func(t *testing.T) {
		s := New(newMemoryCache(t))
		require.NoError(t, s.Close())
		assert.NoError(t, s.Ping(testContext(t)))
	})

	t.Run("redis", func(t *testing.T) {
		s := New(newRedisCache(t))
		require.NoError(t, s.Close())
		assert.Error(t, s.Ping(testContext(t)))
	})
}
