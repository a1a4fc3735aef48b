package issue

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	vo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/user"
)

// Detail is an issue joined with its assignee and department; either may be nil.
type Detail struct {
	Issue      *Issue
	Assignee   *user.User
	Department *department.Department
}

// Filter narrows an issue listing. Set fields combine with AND; Search
// matches title, description or location case-insensitively. SearchFolded
// is the Unicode lower case of Search and is tried as well, since some
// stores only fold ASCII.
type Filter struct {
	Status       *vo.IssueStatus
	Priority     *vo.Priority
	DepartmentID *uint
	AssignedToID *uint
	Search       string
	SearchFolded string
	Limit        int
	Offset       int
}

type Repository interface {
	Create(ctx context.Context, issue *Issue) error
	Update(ctx context.Context, issue *Issue) error
	// GetByID returns nil, nil when the issue does not exist.
	GetByID(ctx context.Context, id uint) (*Issue, error)
	GetDetail(ctx context.Context, id uint) (*Detail, error)
	// List returns matching issues newest first (id breaks ties).
	List(ctx context.Context, filter Filter) ([]*Detail, error)
	// ListUnassigned returns issues without an assignee, newest first.
	ListUnassigned(ctx context.Context) ([]*Detail, error)
	// Assign applies the assignment in a single UPDATE and reports whether
	// the issue existed.
	Assign(ctx context.Context, id uint, assignment Assignment) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	// ListByIssueID returns comments oldest first.
	ListByIssueID(ctx context.Context, issueID uint) ([]*Comment, error)
}
