package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhat-data-and-ai/bookroster/pkg/types"
)

func TestUniqueIndex_CheckClaimRelease(t *testing.T) {
	c := newMemoryCache(t)
	idx := NewUniqueIndex(c, emailsKey, "email")
	ctx := testContext(t)

	claimed, err := idx.Check(ctx, "a@x.io")
	require.NoError(t, err)
	assert.False(t, claimed)

	require.NoError(t, idx.Claim(ctx, "a@x.io"))
	claimed, err = idx.Check(ctx, "a@x.io")
	require.NoError(t, err)
	assert.True(t, claimed)

	err = idx.ensureUnclaimed(ctx, "a@x.io")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), `email "a@x.io"`)

	require.NoError(t, idx.Release(ctx, "a@x.io"))
	assert.NoError(t, idx.ensureUnclaimed(ctx, "a@x.io"))

	// releasing a value that was never claimed is fine
	assert.NoError(t, idx.Release(ctx, "never@x.io"))
}

func TestUniqueIndex_Move(t *testing.T) {
	c := newMemoryCache(t)
	idx := NewUniqueIndex(c, companyNamesKey, "company name")
	ctx := testContext(t)

	require.NoError(t, idx.Claim(ctx, "Acme"))
	require.NoError(t, idx.move(ctx, "Acme", "Acme Corp"))
	assertClaimed(t, c, companyNamesKey, "Acme", false)
	assertClaimed(t, c, companyNamesKey, "Acme Corp", true)

	require.NoError(t, idx.move(ctx, "Acme Corp", "Acme Corp"))
	assertClaimed(t, c, companyNamesKey, "Acme Corp", true)
}

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name       string
		record     any
		wantFields string
	}{
		{name: "valid company", record: types.Company{Name: "Acme", Email: "contact@acme.io"}},
		{name: "blank name and missing email", record: types.Company{Name: "  "}, wantFields: "name, email"},
		{name: "employee without company", record: types.Employee{FirstName: "a", LastName: "b", Email: "c"}, wantFields: "id_comp"},
		{name: "empty update", record: types.CompanyUpdate{}},
		{name: "blank update value", record: types.BookUpdate{Name: ptr(" \t")}, wantFields: "name"},
		{name: "non positive company in update", record: types.EmployeeUpdate{CompanyID: ptr(int64(-1))}, wantFields: "id_comp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRecord(tt.record)
			if tt.wantFields == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantFields)
		})
	}
}
