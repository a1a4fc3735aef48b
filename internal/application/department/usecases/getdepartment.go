package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/department/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type GetDepartmentQuery struct {
	ID uint
}

type GetDepartmentUseCase struct {
	departmentRepo department.Repository
	logger         logger.Interface
}

func NewGetDepartmentUseCase(departmentRepo department.Repository, logger logger.Interface) *GetDepartmentUseCase {
	return &GetDepartmentUseCase{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

func (uc *GetDepartmentUseCase) Execute(ctx context.Context, query GetDepartmentQuery) (*dto.DepartmentDTO, error) {
	d, err := uc.departmentRepo.GetByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to get department", "department_id", query.ID, "error", err)
		return nil, errors.NewInternalError("failed to get department")
	}
	if d == nil {
		return nil, errors.NewNotFoundError("Department not found")
	}
	return dto.ToDepartmentDTO(d), nil
}

type ListDepartmentsUseCase struct {
	departmentRepo department.Repository
	logger         logger.Interface
}

func NewListDepartmentsUseCase(departmentRepo department.Repository, logger logger.Interface) *ListDepartmentsUseCase {
	return &ListDepartmentsUseCase{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

func (uc *ListDepartmentsUseCase) Execute(ctx context.Context) ([]*dto.DepartmentDTO, error) {
	departments, err := uc.departmentRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list departments", "error", err)
		return nil, errors.NewInternalError("failed to list departments")
	}
	return dto.ToDepartmentDTOList(departments), nil
}
