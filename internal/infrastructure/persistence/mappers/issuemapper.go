package mappers

import (
	"fmt"

	"github.com/civicdesk/civicdesk/internal/domain/issue"
	vo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/utils/jsonutil"
)

// IssueMapper converts issues and their comments between entities and
// persistence models.
type IssueMapper interface {
	ToModel(i *issue.Issue) *models.IssueModel
	ToDomain(model *models.IssueModel) (*issue.Issue, error)
	CommentToModel(c *issue.Comment) *models.IssueCommentModel
	CommentToDomain(model *models.IssueCommentModel) (*issue.Comment, error)
}

type issueMapper struct{}

func NewIssueMapper() IssueMapper {
	return &issueMapper{}
}

func (m *issueMapper) ToModel(i *issue.Issue) *models.IssueModel {
	return &models.IssueModel{
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
		EstimatedResolution: millisPtr(i.EstimatedResolution()),
		ResolvedAt:          millisPtr(i.ResolvedAt()),
		Notes:               i.Notes(),
		Attachments:         jsonutil.StringsToJSON(i.Attachments()),
		CreatedAt:           i.CreatedAt().UnixMilli(),
		UpdatedAt:           i.UpdatedAt().UnixMilli(),
	}
}

func (m *issueMapper) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	attachments, err := jsonutil.JSONToStrings(model.Attachments)
	if err != nil {
		return nil, fmt.Errorf("issue %d attachments: %w", model.ID, err)
	}
	return issue.ReconstructIssue(
		model.ID,
		issue.Draft{
			Title:               model.Title,
			Description:         model.Description,
			Status:              vo.IssueStatus(model.Status),
			Priority:            vo.Priority(model.Priority),
			Location:            model.Location,
			ReporterName:        model.ReporterName,
			ReporterEmail:       model.ReporterEmail,
			ReporterPhone:       model.ReporterPhone,
			AssignedToID:        model.AssignedToID,
			DepartmentID:        model.DepartmentID,
			EstimatedResolution: timePtr(model.EstimatedResolution),
			Notes:               model.Notes,
			Attachments:         attachments,
		},
		timePtr(model.ResolvedAt),
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *issueMapper) CommentToModel(c *issue.Comment) *models.IssueCommentModel {
	return &models.IssueCommentModel{
		ID:         c.ID(),
		IssueID:    c.IssueID(),
		UserID:     c.UserID(),
		Comment:    c.Comment(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
	}
}

func (m *issueMapper) CommentToDomain(model *models.IssueCommentModel) (*issue.Comment, error) {
	return issue.ReconstructComment(
		model.ID,
		model.IssueID,
		model.UserID,
		model.Comment,
		model.IsInternal,
		biztime.FromMillis(model.CreatedAt),
	)
}
