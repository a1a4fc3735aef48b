package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	vo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
)

type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, u *user.User) error
	UpdateFunc      func(ctx context.Context, u *user.User) error
	GetByIDFunc     func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*user.User, error)
	GetDetailFunc   func(ctx context.Context, id uint) (*user.Detail, error)
	GetByIDsFunc    func(ctx context.Context, ids []uint) (map[uint]*user.User, error)
	ListDetailsFunc func(ctx context.Context) ([]*user.Detail, error)
	ExistsFunc      func(ctx context.Context, id uint) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetDetail(ctx context.Context, id uint) (*user.Detail, error) {
	if m.GetDetailFunc != nil {
		return m.GetDetailFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*user.User{}, nil
}

func (m *mockUserRepository) ListDetails(ctx context.Context) ([]*user.Detail, error) {
	if m.ListDetailsFunc != nil {
		return m.ListDetailsFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

// mockDepartmentRepository only answers Exists; the user use cases need nothing else.
type mockDepartmentRepository struct {
	department.Repository
	ExistsFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockDepartmentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

type mockTransactor struct{}

func (mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestUser(t *testing.T, id uint, name, email string) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, user.Draft{
		Name:        name,
		Email:       email,
		Role:        vo.RoleStaffMember,
		Status:      vo.StatusActive,
		Permissions: []string{},
	}, nil, now, now)
	require.NoError(t, err)
	return u
}
