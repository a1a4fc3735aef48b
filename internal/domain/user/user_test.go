package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/nullable"
)

func newTestUser(t *testing.T) *User {
	t.Helper()
	deptID := uint(2)
	phone := "555-0100"
	u, err := ReconstructUser(7, Draft{
		Name:         "Sam Rivera",
		Email:        "sam@city.gov",
		Phone:        &phone,
		Role:         vo.RoleStaffMember,
		Status:       vo.StatusActive,
		DepartmentID: &deptID,
		Permissions:  []string{"issues:read"},
	}, nil, time.Unix(0, 0).UTC(), time.Unix(0, 0).UTC())
	require.NoError(t, err)
	return u
}

func TestNewUser_Defaults(t *testing.T) {
	u, err := NewUser(Draft{Name: "Ana", Email: "ANA@city.gov", Role: vo.RoleViewer})
	require.NoError(t, err)

	assert.Equal(t, vo.StatusActive, u.Status())
	assert.Equal(t, "ana@city.gov", u.Email().String())
	assert.NotNil(t, u.Permissions())
	assert.Nil(t, u.DepartmentID())
}

func TestNewUser_Invalid(t *testing.T) {
	_, err := NewUser(Draft{Name: "", Email: "a@b.org", Role: vo.RoleViewer})
	assert.Error(t, err)

	_, err = NewUser(Draft{Name: "Ana", Email: "nope", Role: vo.RoleViewer})
	assert.Error(t, err)

	_, err = NewUser(Draft{Name: "Ana", Email: "a@b.org", Role: "root"})
	assert.Error(t, err)
}

func TestUser_ApplyClearsNullableFields(t *testing.T) {
	u := newTestUser(t)

	err := u.Apply(Patch{
		Phone:        nullable.Null[string](),
		DepartmentID: nullable.Null[uint](),
	})
	require.NoError(t, err)

	assert.Nil(t, u.Phone())
	assert.Nil(t, u.DepartmentID())
	assert.Equal(t, "Sam Rivera", u.Name())
	assert.True(t, u.UpdatedAt().After(time.Unix(0, 0)))
}

func TestUser_ApplyLeavesAbsentFieldsUntouched(t *testing.T) {
	u := newTestUser(t)

	role := vo.RoleDepartmentHead
	require.NoError(t, u.Apply(Patch{Role: &role}))

	assert.Equal(t, vo.RoleDepartmentHead, u.Role())
	require.NotNil(t, u.Phone())
	assert.Equal(t, "555-0100", *u.Phone())
	require.NotNil(t, u.DepartmentID())
	assert.Equal(t, uint(2), *u.DepartmentID())
}
