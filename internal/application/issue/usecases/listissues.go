package usecases

import (
	"context"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/civicdesk/civicdesk/internal/application/issue/dto"
	"github.com/civicdesk/civicdesk/internal/domain/issue"
	vo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/query"
)

// ListIssuesQuery carries raw filter values; empty strings and nil ids mean
// the filter is not applied.
type ListIssuesQuery struct {
	Status       string
	Priority     string
	DepartmentID *uint
	AssignedToID *uint
	Search       string
	Limit        int
	Offset       int
}

type ListIssuesUseCase struct {
	issueRepo    issue.Repository
	defaultLimit int
	maxLimit     int
	logger       logger.Interface
}

func NewListIssuesUseCase(issueRepo issue.Repository, defaultLimit, maxLimit int, logger logger.Interface) *ListIssuesUseCase {
	return &ListIssuesUseCase{
		issueRepo:    issueRepo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, q ListIssuesQuery) ([]*dto.IssueWithRelationsDTO, error) {
	filter, err := uc.buildFilter(q)
	if err != nil {
		return nil, err
	}

	details, err := uc.issueRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list issues", "error", err)
		return nil, errors.NewInternalError("failed to list issues")
	}
	return dto.ToIssueWithRelationsDTOList(details), nil
}

func (uc *ListIssuesUseCase) buildFilter(q ListIssuesQuery) (issue.Filter, error) {
	var fields []errors.FieldError
	filter := issue.Filter{
		DepartmentID: q.DepartmentID,
		AssignedToID: q.AssignedToID,
	}

	if q.Status != "" {
		status, err := vo.NewIssueStatus(q.Status)
		if err != nil {
			fields = append(fields, errors.FieldError{Path: "status", Message: err.Error()})
		} else {
			filter.Status = &status
		}
	}
	if q.Priority != "" {
		priority, err := vo.NewPriority(q.Priority)
		if err != nil {
			fields = append(fields, errors.FieldError{Path: "priority", Message: err.Error()})
		} else {
			filter.Priority = &priority
		}
	}
	if len(fields) > 0 {
		return issue.Filter{}, errors.NewValidationError("Invalid query parameters", fields...)
	}

	// A Caser keeps state between calls, so each request folds with its own.
	filter.Search = q.Search
	filter.SearchFolded = cases.Lower(language.Und).String(q.Search)

	window := query.Window{Limit: q.Limit, Offset: q.Offset}.Normalize(uc.defaultLimit, uc.maxLimit)
	filter.Limit = window.Limit
	filter.Offset = window.Offset
	return filter, nil
}

// ListUnassignedIssuesUseCase lists issues nobody has been assigned yet.
type ListUnassignedIssuesUseCase struct {
	issueRepo issue.Repository
	logger    logger.Interface
}

func NewListUnassignedIssuesUseCase(issueRepo issue.Repository, logger logger.Interface) *ListUnassignedIssuesUseCase {
	return &ListUnassignedIssuesUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *ListUnassignedIssuesUseCase) Execute(ctx context.Context) ([]*dto.IssueWithRelationsDTO, error) {
	details, err := uc.issueRepo.ListUnassigned(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list unassigned issues", "error", err)
		return nil, errors.NewInternalError("failed to list unassigned issues")
	}
	return dto.ToIssueWithRelationsDTOList(details), nil
}
