package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/analytics/dto"
	"github.com/civicdesk/civicdesk/internal/domain/analytics"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// GetStatsUseCase reports dashboard totals. fallbackDays is reported as the
// average resolution time until some resolved issue carries a resolution stamp.
type GetStatsUseCase struct {
	analyticsRepo analytics.Repository
	fallbackDays  float64
	logger        logger.Interface
}

func NewGetStatsUseCase(analyticsRepo analytics.Repository, fallbackDays float64, logger logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{
		analyticsRepo: analyticsRepo,
		fallbackDays:  fallbackDays,
		logger:        logger,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	counts, err := uc.analyticsRepo.IssueCounts(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count issues", "error", err)
		return nil, errors.NewInternalError("failed to load statistics")
	}

	avg := uc.fallbackDays
	if counts.AvgResolutionMillis != nil {
		avg = analytics.MillisToDays(*counts.AvgResolutionMillis)
	}

	return &dto.StatsDTO{
		TotalIssues:       counts.Total,
		PendingIssues:     counts.Pending,
		ResolvedIssues:    counts.Resolved,
		AvgResolutionTime: avg,
	}, nil
}

type GetIssuesByDepartmentUseCase struct {
	analyticsRepo analytics.Repository
	logger        logger.Interface
}

func NewGetIssuesByDepartmentUseCase(analyticsRepo analytics.Repository, logger logger.Interface) *GetIssuesByDepartmentUseCase {
	return &GetIssuesByDepartmentUseCase{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

func (uc *GetIssuesByDepartmentUseCase) Execute(ctx context.Context) ([]dto.DepartmentCountDTO, error) {
	counts, err := uc.analyticsRepo.IssuesByDepartment(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count issues by department", "error", err)
		return nil, errors.NewInternalError("failed to load department statistics")
	}
	return dto.ToDepartmentCountDTOList(counts), nil
}
