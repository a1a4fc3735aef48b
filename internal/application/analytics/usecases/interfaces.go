package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/analytics/dto"
)

type GetStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

type GetIssuesByDepartmentExecutor interface {
	Execute(ctx context.Context) ([]dto.DepartmentCountDTO, error)
}

type GetIssuesTrendExecutor interface {
	Execute(ctx context.Context, query GetIssuesTrendQuery) ([]dto.TrendPointDTO, error)
}
