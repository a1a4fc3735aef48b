package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/department/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type CreateDepartmentCommand struct {
	Name        string
	Head        string
	Staff       int
	Specialties []string
}

type CreateDepartmentUseCase struct {
	departmentRepo department.Repository
	logger         logger.Interface
}

func NewCreateDepartmentUseCase(
	departmentRepo department.Repository,
	logger logger.Interface,
) *CreateDepartmentUseCase {
	return &CreateDepartmentUseCase{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

func (uc *CreateDepartmentUseCase) Execute(ctx context.Context, cmd CreateDepartmentCommand) (*dto.DepartmentDTO, error) {
	uc.logger.Infow("executing create department use case", "name", cmd.Name)

	d, err := department.NewDepartment(cmd.Name, cmd.Head, cmd.Staff, cmd.Specialties)
	if err != nil {
		uc.logger.Warnw("invalid department", "error", err)
		return nil, errors.NewFieldError("body", err.Error())
	}

	if err := uc.departmentRepo.Create(ctx, d); err != nil {
		uc.logger.Errorw("failed to create department", "error", err)
		return nil, errors.NewInternalError("failed to create department")
	}

	uc.logger.Infow("department created successfully", "department_id", d.ID())
	return dto.ToDepartmentDTO(d), nil
}
