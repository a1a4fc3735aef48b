package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/domain/analytics"
	"github.com/civicdesk/civicdesk/internal/domain/department"
)

type mockDepartmentRepository struct {
	CreateFunc   func(ctx context.Context, d *department.Department) error
	UpdateFunc   func(ctx context.Context, d *department.Department) error
	GetByIDFunc  func(ctx context.Context, id uint) (*department.Department, error)
	GetByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*department.Department, error)
	ListFunc     func(ctx context.Context) ([]*department.Department, error)
	ExistsFunc   func(ctx context.Context, id uint) (bool, error)
}

func (m *mockDepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDepartmentRepository) GetByID(ctx context.Context, id uint) (*department.Department, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDepartmentRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*department.Department, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*department.Department{}, nil
}

func (m *mockDepartmentRepository) List(ctx context.Context) ([]*department.Department, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockDepartmentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

type mockAnalyticsRepository struct {
	DepartmentLoadsFunc func(ctx context.Context) (map[uint]analytics.DepartmentLoad, error)
}

func (m *mockAnalyticsRepository) IssueCounts(ctx context.Context) (*analytics.IssueCounts, error) {
	return &analytics.IssueCounts{}, nil
}

func (m *mockAnalyticsRepository) IssuesByDepartment(ctx context.Context) ([]analytics.DepartmentIssueCount, error) {
	return nil, nil
}

func (m *mockAnalyticsRepository) DepartmentLoads(ctx context.Context) (map[uint]analytics.DepartmentLoad, error) {
	if m.DepartmentLoadsFunc != nil {
		return m.DepartmentLoadsFunc(ctx)
	}
	return map[uint]analytics.DepartmentLoad{}, nil
}

func (m *mockAnalyticsRepository) IssuesCreatedSince(ctx context.Context, since time.Time) ([]analytics.IssueCreation, error) {
	return nil, nil
}

// mockTransactor runs fn inline without a real transaction.
type mockTransactor struct{}

func (mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestDepartment(t *testing.T, id uint, name string, staff int) *department.Department {
	t.Helper()
	now := time.Now().UTC()
	d, err := department.ReconstructDepartment(id, name, "Head of "+name, staff, []string{"general"}, now, now)
	require.NoError(t, err)
	return d
}
