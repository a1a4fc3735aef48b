package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/nullable"
)

func TestCreateUserUseCase_Execute(t *testing.T) {
	deptID := uint(2)

	t.Run("success", func(t *testing.T) {
		var lookedUp string
		users := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				lookedUp = email
				return nil, nil
			},
			CreateFunc: func(ctx context.Context, u *user.User) error {
				return u.SetID(5)
			},
		}
		depts := &mockDepartmentRepository{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) { return id == deptID, nil },
		}
		uc := NewCreateUserUseCase(users, depts, logger.NewNopLogger())

		result, err := uc.Execute(t.Context(), CreateUserCommand{
			Name:         "Sarah Johnson",
			Email:        "Sarah.Johnson@City.gov",
			Role:         "department-head",
			DepartmentID: &deptID,
		})
		require.NoError(t, err)
		assert.Equal(t, "sarah.johnson@city.gov", lookedUp)
		assert.Equal(t, uint(5), result.ID)
		assert.Equal(t, "sarah.johnson@city.gov", result.Email)
		assert.Equal(t, "active", result.Status)
		assert.Equal(t, &deptID, result.DepartmentID)
		assert.NotNil(t, result.Permissions)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		users := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return newTestUser(t, 1, "Other", email), nil
			},
			CreateFunc: func(ctx context.Context, u *user.User) error {
				t.Fatal("create must not be called")
				return nil
			},
		}
		uc := NewCreateUserUseCase(users, &mockDepartmentRepository{}, logger.NewNopLogger())

		_, err := uc.Execute(t.Context(), CreateUserCommand{Name: "Dup", Email: "dup@city.gov", Role: "viewer"})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("unique index race is a conflict", func(t *testing.T) {
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, u *user.User) error {
				return stderrors.New("UNIQUE constraint failed: users.email")
			},
		}
		uc := NewCreateUserUseCase(users, &mockDepartmentRepository{}, logger.NewNopLogger())

		_, err := uc.Execute(t.Context(), CreateUserCommand{Name: "Dup", Email: "dup@city.gov", Role: "viewer"})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("unknown department", func(t *testing.T) {
		uc := NewCreateUserUseCase(&mockUserRepository{}, &mockDepartmentRepository{}, logger.NewNopLogger())

		missing := uint(40)
		_, err := uc.Execute(t.Context(), CreateUserCommand{
			Name:         "Ann",
			Email:        "ann@city.gov",
			Role:         "viewer",
			DepartmentID: &missing,
		})
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "departmentId", appErr.Fields[0].Path)
	})

	t.Run("invalid role", func(t *testing.T) {
		uc := NewCreateUserUseCase(&mockUserRepository{}, &mockDepartmentRepository{}, logger.NewNopLogger())

		_, err := uc.Execute(t.Context(), CreateUserCommand{Name: "Ann", Email: "ann@city.gov", Role: "mayor"})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUpdateUserUseCase_Execute(t *testing.T) {
	t.Run("clears department and keeps own email", func(t *testing.T) {
		existing := newTestUser(t, 7, "John", "john@city.gov")
		users := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return existing, nil },
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return existing, nil
			},
		}
		uc := NewUpdateUserUseCase(users, &mockDepartmentRepository{}, mockTransactor{}, logger.NewNopLogger())

		email := "JOHN@city.gov"
		name := "John Smith"
		result, err := uc.Execute(t.Context(), UpdateUserCommand{
			ID: 7,
			Patch: user.Patch{
				Name:         &name,
				Email:        &email,
				DepartmentID: nullable.Null[uint](),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "John Smith", result.Name)
		assert.Equal(t, "john@city.gov", result.Email)
		assert.Nil(t, result.DepartmentID)
	})

	t.Run("email owned by another user", func(t *testing.T) {
		users := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return newTestUser(t, 7, "John", "john@city.gov"), nil
			},
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return newTestUser(t, 8, "Maria", email), nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				t.Fatal("update must not be called")
				return nil
			},
		}
		uc := NewUpdateUserUseCase(users, &mockDepartmentRepository{}, mockTransactor{}, logger.NewNopLogger())

		email := "maria@city.gov"
		_, err := uc.Execute(t.Context(), UpdateUserCommand{ID: 7, Patch: user.Patch{Email: &email}})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("not found", func(t *testing.T) {
		uc := NewUpdateUserUseCase(&mockUserRepository{}, &mockDepartmentRepository{}, mockTransactor{}, logger.NewNopLogger())

		_, err := uc.Execute(t.Context(), UpdateUserCommand{ID: 70})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestGetUserUseCase_Execute(t *testing.T) {
	now := time.Now().UTC()
	dept, err := department.ReconstructDepartment(3, "Parks", "Maria", 2, nil, now, now)
	require.NoError(t, err)

	users := &mockUserRepository{
		GetDetailFunc: func(ctx context.Context, id uint) (*user.Detail, error) {
			if id != 1 {
				return nil, nil
			}
			return &user.Detail{User: newTestUser(t, 1, "Maria", "maria@city.gov"), Department: dept}, nil
		},
	}
	uc := NewGetUserUseCase(users, logger.NewNopLogger())

	result, err := uc.Execute(t.Context(), GetUserQuery{ID: 1})
	require.NoError(t, err)
	require.NotNil(t, result.Department)
	assert.Equal(t, "Parks", result.Department.Name)

	_, err = uc.Execute(t.Context(), GetUserQuery{ID: 2})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListUsersUseCase_Execute(t *testing.T) {
	users := &mockUserRepository{
		ListDetailsFunc: func(ctx context.Context) ([]*user.Detail, error) {
			return []*user.Detail{{User: newTestUser(t, 1, "Ann", "ann@city.gov")}}, nil
		},
	}
	uc := NewListUsersUseCase(users, logger.NewNopLogger())

	result, err := uc.Execute(t.Context())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Ann", result[0].Name)
	assert.Nil(t, result[0].Department)
}
