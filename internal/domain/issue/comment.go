package issue

import (
	"fmt"
	"strings"
	"time"

	"github.com/civicdesk/civicdesk/internal/shared/biztime"
)

const maxCommentLength = 5000

// Comment is a note left on an issue by a staff member. Internal comments
// are hidden from residents.
type Comment struct {
	id         uint
	issueID    uint
	userID     uint
	comment    string
	isInternal bool
	createdAt  time.Time
}

func NewComment(issueID, userID uint, comment string, isInternal bool) (*Comment, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("comment cannot be empty")
	}
	if len(comment) > maxCommentLength {
		return nil, fmt.Errorf("comment exceeds maximum length of %d characters", maxCommentLength)
	}

	return &Comment{
		issueID:    issueID,
		userID:     userID,
		comment:    comment,
		isInternal: isInternal,
		createdAt:  biztime.StampUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	issueID uint,
	userID uint,
	comment string,
	isInternal bool,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}

	return &Comment{
		id:         id,
		issueID:    issueID,
		userID:     userID,
		comment:    comment,
		isInternal: isInternal,
		createdAt:  createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) IssueID() uint {
	return c.issueID
}

func (c *Comment) UserID() uint {
	return c.userID
}

func (c *Comment) Comment() string {
	return c.comment
}

func (c *Comment) IsInternal() bool {
	return c.isInternal
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
