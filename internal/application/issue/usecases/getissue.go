package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/issue/dto"
	"github.com/civicdesk/civicdesk/internal/domain/issue"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type GetIssueQuery struct {
	ID uint
}

type GetIssueUseCase struct {
	issueRepo issue.Repository
	logger    logger.Interface
}

func NewGetIssueUseCase(issueRepo issue.Repository, logger logger.Interface) *GetIssueUseCase {
	return &GetIssueUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueWithRelationsDTO, error) {
	detail, err := uc.issueRepo.GetDetail(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to get issue", "issue_id", query.ID, "error", err)
		return nil, errors.NewInternalError("failed to get issue")
	}
	if detail == nil {
		return nil, errors.NewNotFoundError("Issue not found")
	}
	return dto.ToIssueWithRelationsDTO(detail), nil
}
