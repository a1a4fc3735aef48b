package dto

import (
	"time"

	deptdto "github.com/civicdesk/civicdesk/internal/application/department/dto"
	userdto "github.com/civicdesk/civicdesk/internal/application/user/dto"
	"github.com/civicdesk/civicdesk/internal/domain/issue"
	"github.com/civicdesk/civicdesk/internal/shared/mapper"
)

type IssueDTO struct {
	ID                  uint       `json:"id"`
	Title               string     `json:"title"`
	Description         *string    `json:"description"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority"`
	Location            string     `json:"location"`
	ReporterName        string     `json:"reporterName"`
	ReporterEmail       *string    `json:"reporterEmail"`
	ReporterPhone       *string    `json:"reporterPhone"`
	AssignedToID        *uint      `json:"assignedToId"`
	DepartmentID        *uint      `json:"departmentId"`
	EstimatedResolution *time.Time `json:"estimatedResolution"`
	ResolvedAt          *time.Time `json:"resolvedAt"`
	Notes               *string    `json:"notes"`
	Attachments         []string   `json:"attachments"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// IssueWithRelationsDTO carries the assignee and department; both are null
// when the issue has none.
type IssueWithRelationsDTO struct {
	IssueDTO
	AssignedTo *userdto.UserDTO       `json:"assignedTo"`
	Department *deptdto.DepartmentDTO `json:"department"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	IssueID     uint      `json:"issueId"`
	UserID      uint      `json:"userId"`
	Comment     string    `json:"comment"`
	CommentHTML string    `json:"commentHtml"`
	IsInternal  bool      `json:"isInternal"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToIssueDTO(i *issue.Issue) *IssueDTO {
	if i == nil {
		return nil
	}
	return &IssueDTO{
		ID:                  i.ID(),
		Title:               i.Title(),
		Description:         i.Description(),
		Status:              i.Status().String(),
		Priority:            i.Priority().String(),
		Location:            i.Location(),
		ReporterName:        i.ReporterName(),
		ReporterEmail:       i.ReporterEmail(),
		ReporterPhone:       i.ReporterPhone(),
		AssignedToID:        i.AssignedToID(),
		DepartmentID:        i.DepartmentID(),
		EstimatedResolution: i.EstimatedResolution(),
		ResolvedAt:          i.ResolvedAt(),
		Notes:               i.Notes(),
		Attachments:         i.Attachments(),
		CreatedAt:           i.CreatedAt(),
		UpdatedAt:           i.UpdatedAt(),
	}
}

func ToIssueWithRelationsDTO(d *issue.Detail) *IssueWithRelationsDTO {
	if d == nil || d.Issue == nil {
		return nil
	}
	return &IssueWithRelationsDTO{
		IssueDTO:   *ToIssueDTO(d.Issue),
		AssignedTo: userdto.ToUserDTO(d.Assignee),
		Department: deptdto.ToDepartmentDTO(d.Department),
	}
}

func ToIssueWithRelationsDTOList(details []*issue.Detail) []*IssueWithRelationsDTO {
	return mapper.MapSlice(details, ToIssueWithRelationsDTO)
}

// ToCommentDTO pairs a comment with its rendered HTML.
func ToCommentDTO(c *issue.Comment, html string) *CommentDTO {
	if c == nil {
		return nil
	}
	return &CommentDTO{
		ID:          c.ID(),
		IssueID:     c.IssueID(),
		UserID:      c.UserID(),
		Comment:     c.Comment(),
		CommentHTML: html,
		IsInternal:  c.IsInternal(),
		CreatedAt:   c.CreatedAt(),
	}
}
