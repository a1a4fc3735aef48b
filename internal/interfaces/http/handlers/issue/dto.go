package issue

import (
	"time"

	"github.com/civicdesk/civicdesk/internal/application/issue/usecases"
	domain "github.com/civicdesk/civicdesk/internal/domain/issue"
	vo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/nullable"
)

type CreateIssueRequest struct {
	Title               string     `json:"title" binding:"required,notblank,max=200" example:"Pothole on Main Street"`
	Description         *string    `json:"description" binding:"omitempty,max=5000"`
	Status              string     `json:"status" binding:"omitempty,oneof=pending in-progress resolved urgent" example:"pending"`
	Priority            string     `json:"priority" binding:"omitempty,oneof=low medium high critical" example:"high"`
	Location            string     `json:"location" binding:"required,notblank,max=255" example:"Main St & 5th Ave"`
	ReporterName        string     `json:"reporterName" binding:"required,notblank,max=100" example:"Dana Lee"`
	ReporterEmail       *string    `json:"reporterEmail" binding:"omitempty,email,max=255"`
	ReporterPhone       *string    `json:"reporterPhone" binding:"omitempty,max=32"`
	AssignedToID        *uint      `json:"assignedToId" binding:"omitempty,min=1"`
	DepartmentID        *uint      `json:"departmentId" binding:"omitempty,min=1"`
	EstimatedResolution *time.Time `json:"estimatedResolution"`
	Notes               *string    `json:"notes" binding:"omitempty,max=5000"`
	Attachments         []string   `json:"attachments" binding:"omitempty,dive,max=2048"`
}

func (r *CreateIssueRequest) ToCommand() usecases.CreateIssueCommand {
	return usecases.CreateIssueCommand{
		Title:               r.Title,
		Description:         r.Description,
		Status:              r.Status,
		Priority:            r.Priority,
		Location:            r.Location,
		ReporterName:        r.ReporterName,
		ReporterEmail:       r.ReporterEmail,
		ReporterPhone:       r.ReporterPhone,
		AssignedToID:        r.AssignedToID,
		DepartmentID:        r.DepartmentID,
		EstimatedResolution: r.EstimatedResolution,
		Notes:               r.Notes,
		Attachments:         r.Attachments,
	}
}

// UpdateIssueRequest is a partial update: absent keys are left alone and
// null clears an optional field.
type UpdateIssueRequest struct {
	Title               *string                   `json:"title" binding:"omitempty,notblank,max=200"`
	Description         nullable.Field[string]    `json:"description" binding:"omitempty,max=5000" swaggertype:"string"`
	Status              *string                   `json:"status" binding:"omitempty,oneof=pending in-progress resolved urgent"`
	Priority            *string                   `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Location            *string                   `json:"location" binding:"omitempty,notblank,max=255"`
	ReporterName        *string                   `json:"reporterName" binding:"omitempty,notblank,max=100"`
	ReporterEmail       nullable.Field[string]    `json:"reporterEmail" binding:"omitempty,email,max=255" swaggertype:"string"`
	ReporterPhone       nullable.Field[string]    `json:"reporterPhone" binding:"omitempty,max=32" swaggertype:"string"`
	AssignedToID        nullable.Field[uint]      `json:"assignedToId" binding:"omitempty,min=1" swaggertype:"integer"`
	DepartmentID        nullable.Field[uint]      `json:"departmentId" binding:"omitempty,min=1" swaggertype:"integer"`
	EstimatedResolution nullable.Field[time.Time] `json:"estimatedResolution" swaggertype:"string" format:"date-time"`
	Notes               nullable.Field[string]    `json:"notes" binding:"omitempty,max=5000" swaggertype:"string"`
	Attachments         *[]string                 `json:"attachments" binding:"omitempty,dive,max=2048"`
}

func (r *UpdateIssueRequest) ToCommand(id uint) usecases.UpdateIssueCommand {
	patch := domain.Patch{
		Title:               r.Title,
		Description:         r.Description,
		Location:            r.Location,
		ReporterName:        r.ReporterName,
		ReporterEmail:       r.ReporterEmail,
		ReporterPhone:       r.ReporterPhone,
		AssignedToID:        r.AssignedToID,
		DepartmentID:        r.DepartmentID,
		EstimatedResolution: r.EstimatedResolution,
		Notes:               r.Notes,
		Attachments:         r.Attachments,
	}
	if r.Status != nil {
		status := vo.IssueStatus(*r.Status)
		patch.Status = &status
	}
	if r.Priority != nil {
		priority := vo.Priority(*r.Priority)
		patch.Priority = &priority
	}
	return usecases.UpdateIssueCommand{ID: id, Patch: patch}
}

// AssignIssueRequest is checked by the use case so that a missing id is
// reported with the assign specific message.
type AssignIssueRequest struct {
	AssignedToID *uint `json:"assignedToId" example:"2"`
	DepartmentID *uint `json:"departmentId" example:"1"`
}

func (r *AssignIssueRequest) ToCommand(id uint) usecases.AssignIssueCommand {
	return usecases.AssignIssueCommand{
		IssueID:      id,
		AssignedToID: r.AssignedToID,
		DepartmentID: r.DepartmentID,
	}
}

type CreateCommentRequest struct {
	UserID     uint   `json:"userId" binding:"required,min=1" example:"2"`
	Comment    string `json:"comment" binding:"required,notblank,max=5000" example:"Crew dispatched"`
	IsInternal bool   `json:"isInternal"`
}

func (r *CreateCommentRequest) ToCommand(issueID uint) usecases.CreateCommentCommand {
	return usecases.CreateCommentCommand{
		IssueID:    issueID,
		UserID:     r.UserID,
		Comment:    r.Comment,
		IsInternal: r.IsInternal,
	}
}
