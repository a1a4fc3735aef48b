package issue

import (
	"fmt"

	vo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
)

// Assignment hands an issue to a staff member and department. Applying it
// always moves the issue to in-progress and clears any resolution stamp.
type Assignment struct {
	assigneeID   uint
	departmentID uint
}

func NewAssignment(assigneeID, departmentID uint) (Assignment, error) {
	if assigneeID == 0 || departmentID == 0 {
		return Assignment{}, fmt.Errorf("both assignee and department are required")
	}
	return Assignment{assigneeID: assigneeID, departmentID: departmentID}, nil
}

func (a Assignment) AssigneeID() uint {
	return a.assigneeID
}

func (a Assignment) DepartmentID() uint {
	return a.departmentID
}

// Status is the status every assigned issue enters.
func (a Assignment) Status() vo.IssueStatus {
	return vo.StatusInProgress
}
