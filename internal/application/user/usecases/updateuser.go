package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/user/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/db"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type UpdateUserCommand struct {
	ID    uint
	Patch user.Patch
}

type UpdateUserUseCase struct {
	userRepo       user.Repository
	departmentRepo department.Repository
	tx             db.Transactor
	logger         logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	departmentRepo department.Repository,
	tx db.Transactor,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		tx:             tx,
		logger:         logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update user use case", "user_id", cmd.ID)

	var updated *user.User
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		u, err := uc.userRepo.GetByID(ctx, cmd.ID)
		if err != nil {
			uc.logger.Errorw("failed to get user", "user_id", cmd.ID, "error", err)
			return errors.NewInternalError("failed to get user")
		}
		if u == nil {
			return errors.NewNotFoundError("User not found")
		}

		if cmd.Patch.Email != nil {
			if err := ensureEmailAvailable(ctx, uc.userRepo, uc.logger, *cmd.Patch.Email, u.ID()); err != nil {
				return err
			}
		}
		if err := ensureDepartmentExists(ctx, uc.departmentRepo, uc.logger, cmd.Patch.DepartmentID.Ptr()); err != nil {
			return err
		}

		if err := u.Apply(cmd.Patch); err != nil {
			return errors.NewFieldError("body", err.Error())
		}

		if err := uc.userRepo.Update(ctx, u); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError(emailInUseMsg)
			}
			uc.logger.Errorw("failed to update user", "user_id", cmd.ID, "error", err)
			return errors.NewInternalError("failed to update user")
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("user updated successfully", "user_id", cmd.ID)
	return dto.ToUserDTO(updated), nil
}
