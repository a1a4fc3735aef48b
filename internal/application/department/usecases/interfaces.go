package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/department/dto"
)

type CreateDepartmentExecutor interface {
	Execute(ctx context.Context, cmd CreateDepartmentCommand) (*dto.DepartmentDTO, error)
}

type UpdateDepartmentExecutor interface {
	Execute(ctx context.Context, cmd UpdateDepartmentCommand) (*dto.DepartmentDTO, error)
}

type GetDepartmentExecutor interface {
	Execute(ctx context.Context, query GetDepartmentQuery) (*dto.DepartmentDTO, error)
}

type ListDepartmentsExecutor interface {
	Execute(ctx context.Context) ([]*dto.DepartmentDTO, error)
}

type ListDepartmentStatsExecutor interface {
	Execute(ctx context.Context) ([]*dto.DepartmentStatsDTO, error)
}
