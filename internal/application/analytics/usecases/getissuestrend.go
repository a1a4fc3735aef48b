package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/civicdesk/civicdesk/internal/application/analytics/dto"
	"github.com/civicdesk/civicdesk/internal/domain/analytics"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type GetIssuesTrendQuery struct {
	Days int
}

// GetIssuesTrendUseCase buckets the last Days business days of reports.
type GetIssuesTrendUseCase struct {
	analyticsRepo analytics.Repository
	maxDays       int
	now           func() time.Time
	logger        logger.Interface
}

func NewGetIssuesTrendUseCase(analyticsRepo analytics.Repository, maxDays int, logger logger.Interface) *GetIssuesTrendUseCase {
	return &GetIssuesTrendUseCase{
		analyticsRepo: analyticsRepo,
		maxDays:       maxDays,
		now:           biztime.NowUTC,
		logger:        logger,
	}
}

func (uc *GetIssuesTrendUseCase) Execute(ctx context.Context, query GetIssuesTrendQuery) ([]dto.TrendPointDTO, error) {
	if query.Days < 1 || query.Days > uc.maxDays {
		return nil, errors.NewFieldError("days", fmt.Sprintf("days must be between 1 and %d", uc.maxDays))
	}

	now := uc.now()
	since := biztime.WindowStartUTC(now, query.Days)

	creations, err := uc.analyticsRepo.IssuesCreatedSince(ctx, since)
	if err != nil {
		uc.logger.Errorw("failed to load issue trend", "days", query.Days, "error", err)
		return nil, errors.NewInternalError("failed to load issue trend")
	}

	return dto.ToTrendPointDTOList(analytics.BuildTrend(creations, now, query.Days)), nil
}
