package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhat-data-and-ai/bookroster/pkg/cache"
	"github.com/redhat-data-and-ai/bookroster/pkg/cache/inmemory"
	"github.com/redhat-data-and-ai/bookroster/pkg/cache/redis"
	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return context.Background()
}

func newMemoryCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := inmemory.NewCache(&inmemory.Config{
		DefaultExpiration: 300,
		CleanupInterval:   600,
	})
	require.NoError(t, err)
	return c
}

func newRedisCache(t *testing.T) cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := redis.NewCache(&redis.Config{Host: mr.Host(), Port: mr.Port()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// backend builds an isolated cache for one test
type backend struct {
	name     string
	newCache func(t *testing.T) cache.Cache
}

var backends = []backend{
	{name: "inmemory", newCache: newMemoryCache},
	{name: "redis", newCache: newRedisCache},
}

// forEachBackend runs fn once per cache driver against a fresh store
func forEachBackend(t *testing.T, fn func(t *testing.T, s *Store, c cache.Cache)) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			c := b.newCache(t)
			fn(t, New(c), c)
		})
	}
}

func setupStore(t *testing.T) (*Store, cache.Cache) {
	t.Helper()
	c := newMemoryCache(t)
	return New(c), c
}

func ptr[T any](v T) *T {
	return &v
}

func acme() types.Company {
	return types.Company{Name: "Acme", Address: "1 Road Runner Way", Email: "contact@acme.io", CompType: "SRL"}
}

func employeeOf(companyID int64, email string) types.Employee {
	return types.Employee{
		FirstName:   "Wile",
		LastName:    "Coyote",
		Email:       email,
		PhoneNumber: "0700000000",
		CompanyID:   companyID,
	}
}

func dune() types.Book {
	return types.Book{
		Name:        "Dune",
		Author:      "Frank Herbert",
		Length:      "412",
		PublishDate: "1965-08-01",
		Description: "desert planet",
		BookType:    "novel",
		Link:        "https://example.org/dune",
	}
}

func mustCreateCompany(t *testing.T, s *Store, c types.Company) int64 {
	t.Helper()
	id, err := s.Company.Create(testContext(t), c)
	require.NoError(t, err)
	return id
}

func mustCreateEmployee(t *testing.T, s *Store, e types.Employee) int64 {
	t.Helper()
	id, err := s.Employee.Create(testContext(t), e)
	require.NoError(t, err)
	return id
}

func mustCreateBook(t *testing.T, s *Store, b types.Book) int64 {
	t.Helper()
	id, err := s.Book.Create(testContext(t), b)
	require.NoError(t, err)
	return id
}

func assertIndexed(t *testing.T, c cache.Cache, k kind, id int64, want bool) {
	t.Helper()
	ok, err := c.SIsMember(testContext(t), k.index, k.key(id))
	require.NoError(t, err)
	assert.Equal(t, want, ok, "%s %d indexed", k.name, id)
}

func assertClaimed(t *testing.T, c cache.Cache, indexKey, value string, want bool) {
	t.Helper()
	ok, err := c.SIsMember(testContext(t), indexKey, value)
	require.NoError(t, err)
	assert.Equal(t, want, ok, "%q claimed in %s", value, indexKey)
}

// deleter is satisfied by every record store
type deleter interface {
	Delete(ctx context.Context, id int64) error
}

// IdempotentDeleteTestCase describes a delete that must succeed whether or
// not the record exists
type IdempotentDeleteTestCase struct {
	Name      string
	SetupFunc func(t *testing.T, s *Store) int64
	Store     func(s *Store) deleter
	Kind      kind
}

// RunIdempotentDeleteTests deletes each case's record twice and checks the
// record is gone from both the field-map and the index after each call
func RunIdempotentDeleteTests(t *testing.T, tests []IdempotentDeleteTestCase) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			s, c := setupStore(t)
			ctx := testContext(t)
			id := tt.SetupFunc(t, s)

			for i := 0; i < 2; i++ {
				require.NoError(t, tt.Store(s).Delete(ctx, id))

				exists, err := c.Exists(ctx, tt.Kind.key(id))
				require.NoError(t, err)
				assert.False(t, exists)
				assertIndexed(t, c, tt.Kind, id, false)
			}
		})
	}
}
