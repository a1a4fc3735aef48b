package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/user/dto"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	vo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type CreateUserCommand struct {
	Name         string
	Email        string
	Phone        *string
	Role         string
	Status       string
	DepartmentID *uint
	Permissions  []string
}

type CreateUserUseCase struct {
	userRepo       user.Repository
	departmentRepo department.Repository
	logger         logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	departmentRepo department.Repository,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "email", cmd.Email)

	if err := ensureEmailAvailable(ctx, uc.userRepo, uc.logger, cmd.Email, 0); err != nil {
		return nil, err
	}
	if err := ensureDepartmentExists(ctx, uc.departmentRepo, uc.logger, cmd.DepartmentID); err != nil {
		return nil, err
	}

	u, err := user.NewUser(user.Draft{
		Name:         cmd.Name,
		Email:        cmd.Email,
		Phone:        cmd.Phone,
		Role:         vo.Role(cmd.Role),
		Status:       vo.UserStatus(cmd.Status),
		DepartmentID: cmd.DepartmentID,
		Permissions:  cmd.Permissions,
	})
	if err != nil {
		uc.logger.Warnw("invalid user", "error", err)
		return nil, errors.NewFieldError("body", err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(emailInUseMsg)
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created successfully", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}
