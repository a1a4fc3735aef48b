package usecases

import (
	"context"
	"time"

	"github.com/civicdesk/civicdesk/internal/application/issue/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/issue"
	vo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/services/richtext"
)

// CreateIssueCommand holds the writable fields of a new issue. Empty Status
// and Priority select pending and medium.
type CreateIssueCommand struct {
	Title               string
	Description         *string
	Status              string
	Priority            string
	Location            string
	ReporterName        string
	ReporterEmail       *string
	ReporterPhone       *string
	AssignedToID        *uint
	DepartmentID        *uint
	EstimatedResolution *time.Time
	Notes               *string
	Attachments         []string
}

type CreateIssueUseCase struct {
	issueRepo issue.Repository
	refs      referenceChecker
	text      richtext.Service
	logger    logger.Interface
}

func NewCreateIssueUseCase(
	issueRepo issue.Repository,
	userRepo user.Repository,
	departmentRepo department.Repository,
	text richtext.Service,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo: issueRepo,
		refs:      referenceChecker{userRepo: userRepo, departmentRepo: departmentRepo, logger: logger},
		text:      text,
		logger:    logger,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing create issue use case",
		"title", cmd.Title,
		"status", cmd.Status,
		"priority", cmd.Priority)

	if err := uc.refs.check(ctx, cmd.AssignedToID, cmd.DepartmentID); err != nil {
		return nil, err
	}

	i, err := issue.NewIssue(issue.Draft{
		Title:               cmd.Title,
		Description:         cleanOptional(uc.text, cmd.Description),
		Status:              vo.IssueStatus(cmd.Status),
		Priority:            vo.Priority(cmd.Priority),
		Location:            cmd.Location,
		ReporterName:        cmd.ReporterName,
		ReporterEmail:       cmd.ReporterEmail,
		ReporterPhone:       cmd.ReporterPhone,
		AssignedToID:        cmd.AssignedToID,
		DepartmentID:        cmd.DepartmentID,
		EstimatedResolution: cmd.EstimatedResolution,
		Notes:               cleanOptional(uc.text, cmd.Notes),
		Attachments:         cmd.Attachments,
	})
	if err != nil {
		uc.logger.Warnw("invalid issue", "error", err)
		return nil, errors.NewFieldError("body", err.Error())
	}

	if err := uc.issueRepo.Create(ctx, i); err != nil {
		uc.logger.Errorw("failed to create issue", "error", err)
		return nil, errors.NewInternalError("failed to create issue")
	}

	uc.logger.Infow("issue created successfully",
		"issue_id", i.ID(),
		"status", i.Status().String())

	return dto.ToIssueDTO(i), nil
}
