package usecases

import (
	"context"
	stderrors "errors"

	"github.com/civicdesk/civicdesk/internal/application/issue/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/issue"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/db"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/nullable"
	"github.com/civicdesk/civicdesk/internal/shared/services/richtext"
)

type UpdateIssueCommand struct {
	ID    uint
	Patch issue.Patch
}

// UpdateIssueUseCase merges a partial update inside one transaction. With
// strictTransitions set, status changes must follow the transition graph.
type UpdateIssueUseCase struct {
	issueRepo         issue.Repository
	refs              referenceChecker
	tx                db.Transactor
	text              richtext.Service
	strictTransitions bool
	logger            logger.Interface
}

func NewUpdateIssueUseCase(
	issueRepo issue.Repository,
	userRepo user.Repository,
	departmentRepo department.Repository,
	tx db.Transactor,
	text richtext.Service,
	strictTransitions bool,
	logger logger.Interface,
) *UpdateIssueUseCase {
	return &UpdateIssueUseCase{
		issueRepo:         issueRepo,
		refs:              referenceChecker{userRepo: userRepo, departmentRepo: departmentRepo, logger: logger},
		tx:                tx,
		text:              text,
		strictTransitions: strictTransitions,
		logger:            logger,
	}
}

func (uc *UpdateIssueUseCase) Execute(ctx context.Context, cmd UpdateIssueCommand) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing update issue use case", "issue_id", cmd.ID)

	patch := cmd.Patch
	patch.Description = uc.cleanField(patch.Description)
	patch.Notes = uc.cleanField(patch.Notes)

	var updated *issue.Issue
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		i, err := uc.issueRepo.GetByID(ctx, cmd.ID)
		if err != nil {
			uc.logger.Errorw("failed to get issue", "issue_id", cmd.ID, "error", err)
			return errors.NewInternalError("failed to get issue")
		}
		if i == nil {
			return errors.NewNotFoundError("Issue not found")
		}

		if err := uc.refs.check(ctx, patch.AssignedToID.Ptr(), patch.DepartmentID.Ptr()); err != nil {
			return err
		}

		if err := i.Apply(patch, uc.strictTransitions); err != nil {
			var transitionErr *issue.TransitionError
			if stderrors.As(err, &transitionErr) {
				uc.logger.Warnw("rejected status transition",
					"issue_id", cmd.ID,
					"from", transitionErr.From.String(),
					"to", transitionErr.To.String())
				return errors.NewFieldError("status", err.Error())
			}
			return errors.NewFieldError("body", err.Error())
		}

		if err := uc.issueRepo.Update(ctx, i); err != nil {
			uc.logger.Errorw("failed to update issue", "issue_id", cmd.ID, "error", err)
			return errors.NewInternalError("failed to update issue")
		}
		updated = i
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("issue updated successfully",
		"issue_id", updated.ID(),
		"status", updated.Status().String())

	return dto.ToIssueDTO(updated), nil
}

// cleanField sanitizes a present value; text that is empty once cleaned
// becomes an explicit null.
func (uc *UpdateIssueUseCase) cleanField(f nullable.Field[string]) nullable.Field[string] {
	if !f.HasValue() {
		return f
	}
	if cleaned := uc.text.Clean(f.Value); cleaned != "" {
		return nullable.Of(cleaned)
	}
	return nullable.Null[string]()
}
