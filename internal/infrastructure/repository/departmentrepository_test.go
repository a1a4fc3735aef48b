package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/domain/department"
)

func TestDepartmentRepository_CreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	d, err := department.NewDepartment("Public Works", "Maria Garcia", 4, []string{"roads", "potholes"})
	require.NoError(t, err)
	require.NoError(t, f.departments.Create(ctx, d))
	assert.NotZero(t, d.ID())

	found, err := f.departments.GetByID(ctx, d.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Public Works", found.Name())
	assert.Equal(t, 4, found.Staff())
	assert.Equal(t, []string{"roads", "potholes"}, found.Specialties())
	assert.Equal(t, d.CreatedAt().UnixMilli(), found.CreatedAt().UnixMilli())

	t.Run("missing returns nil", func(t *testing.T) {
		missing, err := f.departments.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestDepartmentRepository_Update(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	d := f.department(t, "Parks", 3)

	staff := 7
	specialties := []string{}
	require.NoError(t, d.Apply(department.Patch{Staff: &staff, Specialties: &specialties}))
	require.NoError(t, f.departments.Update(ctx, d))

	found, err := f.departments.GetByID(ctx, d.ID())
	require.NoError(t, err)
	assert.Equal(t, 7, found.Staff())
	assert.Empty(t, found.Specialties())
	assert.NotNil(t, found.Specialties())
	assert.Equal(t, "Parks", found.Name())
}

func TestDepartmentRepository_ListOrderedByName(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	f.department(t, "Water", 2)
	f.department(t, "Electrical", 5)
	f.department(t, "Parks", 3)

	list, err := f.departments.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Electrical", list[0].Name())
	assert.Equal(t, "Parks", list[1].Name())
	assert.Equal(t, "Water", list[2].Name())
}

func TestDepartmentRepository_GetByIDsAndExists(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	a := f.department(t, "A", 1)
	b := f.department(t, "B", 1)

	byID, err := f.departments.GetByIDs(ctx, []uint{a.ID(), b.ID(), 4242})
	require.NoError(t, err)
	assert.Len(t, byID, 2)
	assert.Equal(t, "B", byID[b.ID()].Name())

	empty, err := f.departments.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	ok, err := f.departments.Exists(ctx, a.ID())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.departments.Exists(ctx, 4242)
	require.NoError(t, err)
	assert.False(t, ok)
}
