package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/issue"
	issuevo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	uservo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
	"github.com/civicdesk/civicdesk/internal/infrastructure/migration/migrationtest"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type fixture struct {
	db          *gorm.DB
	departments *DepartmentRepository
	users       *UserRepository
	issues      *IssueRepository
	comments    *CommentRepository
	analytics   *AnalyticsRepository
}

func newFixture(t *testing.T) *fixture {
	db := migrationtest.NewSQLiteDB(t)
	return &fixture{
		db:          db,
		departments: NewDepartmentRepository(db),
		users:       NewUserRepository(db),
		issues:      NewIssueRepository(db, logger.NewNopLogger()),
		comments:    NewCommentRepository(db),
		analytics:   NewAnalyticsRepository(db),
	}
}

func (f *fixture) department(t *testing.T, name string, staff int) *department.Department {
	t.Helper()
	d, err := department.NewDepartment(name, name+" Head", staff, []string{"general"})
	require.NoError(t, err)
	require.NoError(t, f.departments.Create(t.Context(), d))
	return d
}

func (f *fixture) user(t *testing.T, name, email string, departmentID *uint) *user.User {
	t.Helper()
	u, err := user.NewUser(user.Draft{
		Name:         name,
		Email:        email,
		Role:         uservo.RoleStaffMember,
		DepartmentID: departmentID,
		Permissions:  []string{"issues:read"},
	})
	require.NoError(t, err)
	require.NoError(t, f.users.Create(t.Context(), u))
	return u
}

type issueOpt func(*issue.Draft)

func withStatus(s issuevo.IssueStatus) issueOpt {
	return func(d *issue.Draft) { d.Status = s }
}

func withDepartment(id uint) issueOpt {
	return func(d *issue.Draft) { d.DepartmentID = &id }
}

func withAssignee(id uint) issueOpt {
	return func(d *issue.Draft) { d.AssignedToID = &id }
}

func withDescription(s string) issueOpt {
	return func(d *issue.Draft) { d.Description = &s }
}

func withLocation(s string) issueOpt {
	return func(d *issue.Draft) { d.Location = s }
}

func withPriority(p issuevo.Priority) issueOpt {
	return func(d *issue.Draft) { d.Priority = p }
}

func (f *fixture) issue(t *testing.T, title string, opts ...issueOpt) *issue.Issue {
	t.Helper()
	d := issue.Draft{
		Title:        title,
		Location:     "Main St",
		ReporterName: "Resident",
		Attachments:  []string{},
	}
	for _, opt := range opts {
		opt(&d)
	}
	i, err := issue.NewIssue(d)
	require.NoError(t, err)
	require.NoError(t, f.issues.Create(t.Context(), i))
	return i
}

// backdate rewrites created_at (and resolved_at when given) straight in the table.
func (f *fixture) backdate(t *testing.T, id uint, createdAt time.Time, resolvedAt *time.Time) {
	t.Helper()
	updates := map[string]any{"created_at": createdAt.UnixMilli()}
	if resolvedAt != nil {
		updates["resolved_at"] = resolvedAt.UnixMilli()
	}
	require.NoError(t, f.db.Model(&models.IssueModel{}).Where("id = ?", id).Updates(updates).Error)
}
