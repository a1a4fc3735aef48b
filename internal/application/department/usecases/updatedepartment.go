package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/department/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/shared/db"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type UpdateDepartmentCommand struct {
	ID    uint
	Patch department.Patch
}

type UpdateDepartmentUseCase struct {
	departmentRepo department.Repository
	tx             db.Transactor
	logger         logger.Interface
}

func NewUpdateDepartmentUseCase(
	departmentRepo department.Repository,
	tx db.Transactor,
	logger logger.Interface,
) *UpdateDepartmentUseCase {
	return &UpdateDepartmentUseCase{
		departmentRepo: departmentRepo,
		tx:             tx,
		logger:         logger,
	}
}

func (uc *UpdateDepartmentUseCase) Execute(ctx context.Context, cmd UpdateDepartmentCommand) (*dto.DepartmentDTO, error) {
	uc.logger.Infow("executing update department use case", "department_id", cmd.ID)

	var updated *department.Department
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		d, err := uc.departmentRepo.GetByID(ctx, cmd.ID)
		if err != nil {
			uc.logger.Errorw("failed to get department", "department_id", cmd.ID, "error", err)
			return errors.NewInternalError("failed to get department")
		}
		if d == nil {
			return errors.NewNotFoundError("Department not found")
		}

		if err := d.Apply(cmd.Patch); err != nil {
			return errors.NewFieldError("body", err.Error())
		}

		if err := uc.departmentRepo.Update(ctx, d); err != nil {
			uc.logger.Errorw("failed to update department", "department_id", cmd.ID, "error", err)
			return errors.NewInternalError("failed to update department")
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("department updated successfully", "department_id", cmd.ID)
	return dto.ToDepartmentDTO(updated), nil
}
