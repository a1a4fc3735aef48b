package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/issue"
	vo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/services/richtext"
)

type mockIssueRepository struct {
	CreateFunc         func(ctx context.Context, i *issue.Issue) error
	UpdateFunc         func(ctx context.Context, i *issue.Issue) error
	GetByIDFunc        func(ctx context.Context, id uint) (*issue.Issue, error)
	GetDetailFunc      func(ctx context.Context, id uint) (*issue.Detail, error)
	ListFunc           func(ctx context.Context, filter issue.Filter) ([]*issue.Detail, error)
	ListUnassignedFunc func(ctx context.Context) ([]*issue.Detail, error)
	AssignFunc         func(ctx context.Context, id uint, a issue.Assignment) (bool, error)
	ExistsFunc         func(ctx context.Context, id uint) (bool, error)
}

func (m *mockIssueRepository) Create(ctx context.Context, i *issue.Issue) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) GetByID(ctx context.Context, id uint) (*issue.Issue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockIssueRepository) GetDetail(ctx context.Context, id uint) (*issue.Detail, error) {
	if m.GetDetailFunc != nil {
		return m.GetDetailFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockIssueRepository) List(ctx context.Context, filter issue.Filter) ([]*issue.Detail, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockIssueRepository) ListUnassigned(ctx context.Context) ([]*issue.Detail, error) {
	if m.ListUnassignedFunc != nil {
		return m.ListUnassignedFunc(ctx)
	}
	return nil, nil
}

func (m *mockIssueRepository) Assign(ctx context.Context, id uint, a issue.Assignment) (bool, error) {
	if m.AssignFunc != nil {
		return m.AssignFunc(ctx, id, a)
	}
	return false, nil
}

func (m *mockIssueRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

type mockCommentRepository struct {
	CreateFunc        func(ctx context.Context, c *issue.Comment) error
	ListByIssueIDFunc func(ctx context.Context, issueID uint) ([]*issue.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *issue.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByIssueID(ctx context.Context, issueID uint) ([]*issue.Comment, error) {
	if m.ListByIssueIDFunc != nil {
		return m.ListByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

// mockUserRepository and mockDepartmentRepository only answer Exists.
type mockUserRepository struct {
	user.Repository
	ExistsFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

type mockDepartmentRepository struct {
	department.Repository
	ExistsFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockDepartmentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

type mockTransactor struct{}

func (mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestText() richtext.Service {
	return richtext.NewService()
}

func newTestIssue(t *testing.T, id uint, status vo.IssueStatus) *issue.Issue {
	t.Helper()
	created := time.Now().UTC().Add(-48 * time.Hour)
	var resolvedAt *time.Time
	if status.IsResolved() {
		r := created.Add(24 * time.Hour)
		resolvedAt = &r
	}
	i, err := issue.ReconstructIssue(id, issue.Draft{
		Title:        "Pothole on Main Street",
		Status:       status,
		Priority:     vo.PriorityHigh,
		Location:     "Main St & 3rd",
		ReporterName: "Jane Resident",
		Attachments:  []string{},
	}, resolvedAt, created, created)
	require.NoError(t, err)
	return i
}

func ptr[T any](v T) *T {
	return &v
}
