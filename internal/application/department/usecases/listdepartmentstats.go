package usecases

import (
	"context"
	"strconv"

	"github.com/civicdesk/civicdesk/internal/application/department/dto"
	"github.com/civicdesk/civicdesk/internal/domain/analytics"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// ListDepartmentStatsUseCase reports every department with its open issue
// count, workload and average resolution time. Departments without a
// resolved issue report fallbackResolution.
type ListDepartmentStatsUseCase struct {
	departmentRepo     department.Repository
	analyticsRepo      analytics.Repository
	fallbackResolution string
	logger             logger.Interface
}

func NewListDepartmentStatsUseCase(
	departmentRepo department.Repository,
	analyticsRepo analytics.Repository,
	fallbackResolution string,
	logger logger.Interface,
) *ListDepartmentStatsUseCase {
	return &ListDepartmentStatsUseCase{
		departmentRepo:     departmentRepo,
		analyticsRepo:      analyticsRepo,
		fallbackResolution: fallbackResolution,
		logger:             logger,
	}
}

func (uc *ListDepartmentStatsUseCase) Execute(ctx context.Context) ([]*dto.DepartmentStatsDTO, error) {
	departments, err := uc.departmentRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list departments", "error", err)
		return nil, errors.NewInternalError("failed to list departments")
	}

	loads, err := uc.analyticsRepo.DepartmentLoads(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load department workloads", "error", err)
		return nil, errors.NewInternalError("failed to load department statistics")
	}

	result := make([]*dto.DepartmentStatsDTO, 0, len(departments))
	for _, d := range departments {
		load := loads[d.ID()]
		result = append(result, &dto.DepartmentStatsDTO{
			DepartmentDTO:     *dto.ToDepartmentDTO(d),
			ActiveIssues:      load.ActiveIssues,
			AvgResolutionTime: uc.resolutionLabel(load.AvgResolutionMillis),
			Workload:          d.Workload(load.ActiveIssues),
		})
	}
	return result, nil
}

func (uc *ListDepartmentStatsUseCase) resolutionLabel(avgMillis *float64) string {
	if avgMillis == nil {
		return uc.fallbackResolution
	}
	days := analytics.MillisToDays(*avgMillis)
	return strconv.FormatFloat(days, 'f', -1, 64) + " days"
}
