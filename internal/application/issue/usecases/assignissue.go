package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/issue/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/issue"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/mapper"
)

const assignRequiredMsg = "Both assignedToId and departmentId are required"

type AssignIssueCommand struct {
	IssueID      uint
	AssignedToID *uint
	DepartmentID *uint
}

// AssignIssueUseCase hands an issue to a staff member and department and
// moves it to in-progress in a single UPDATE.
type AssignIssueUseCase struct {
	issueRepo issue.Repository
	refs      referenceChecker
	logger    logger.Interface
}

func NewAssignIssueUseCase(
	issueRepo issue.Repository,
	userRepo user.Repository,
	departmentRepo department.Repository,
	logger logger.Interface,
) *AssignIssueUseCase {
	return &AssignIssueUseCase{
		issueRepo: issueRepo,
		refs:      referenceChecker{userRepo: userRepo, departmentRepo: departmentRepo, logger: logger},
		logger:    logger,
	}
}

func (uc *AssignIssueUseCase) Execute(ctx context.Context, cmd AssignIssueCommand) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing assign issue use case",
		"issue_id", cmd.IssueID,
		"assigned_to_id", mapper.Deref(cmd.AssignedToID),
		"department_id", mapper.Deref(cmd.DepartmentID))

	if err := validateAssignCommand(cmd); err != nil {
		return nil, err
	}

	exists, err := uc.issueRepo.Exists(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to check issue", "issue_id", cmd.IssueID, "error", err)
		return nil, errors.NewInternalError("failed to assign issue")
	}
	if !exists {
		return nil, errors.NewNotFoundError("Issue not found")
	}

	if err := uc.refs.check(ctx, cmd.AssignedToID, cmd.DepartmentID); err != nil {
		return nil, err
	}

	assignment, err := issue.NewAssignment(*cmd.AssignedToID, *cmd.DepartmentID)
	if err != nil {
		return nil, errors.NewValidationError(assignRequiredMsg)
	}

	found, err := uc.issueRepo.Assign(ctx, cmd.IssueID, assignment)
	if err != nil {
		uc.logger.Errorw("failed to assign issue", "issue_id", cmd.IssueID, "error", err)
		return nil, errors.NewInternalError("failed to assign issue")
	}
	if !found {
		return nil, errors.NewNotFoundError("Issue not found")
	}

	assigned, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to reload assigned issue", "issue_id", cmd.IssueID, "error", err)
		return nil, errors.NewInternalError("failed to assign issue")
	}
	if assigned == nil {
		return nil, errors.NewNotFoundError("Issue not found")
	}

	uc.logger.Infow("issue assigned successfully",
		"issue_id", cmd.IssueID,
		"assigned_to_id", assignment.AssigneeID(),
		"department_id", assignment.DepartmentID())

	return dto.ToIssueDTO(assigned), nil
}

func validateAssignCommand(cmd AssignIssueCommand) error {
	var fields []errors.FieldError
	if cmd.AssignedToID == nil || *cmd.AssignedToID == 0 {
		fields = append(fields, errors.FieldError{Path: "assignedToId", Message: "assignedToId is required"})
	}
	if cmd.DepartmentID == nil || *cmd.DepartmentID == 0 {
		fields = append(fields, errors.FieldError{Path: "departmentId", Message: "departmentId is required"})
	}
	if len(fields) > 0 {
		return errors.NewValidationError(assignRequiredMsg, fields...)
	}
	return nil
}
