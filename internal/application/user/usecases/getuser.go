package usecases

import (
	"context"

	"github.com/civicdesk/civicdesk/internal/application/user/dto"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

type GetUserQuery struct {
	ID uint
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserWithDepartmentDTO, error) {
	detail, err := uc.userRepo.GetDetail(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", query.ID, "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}
	if detail == nil {
		return nil, errors.NewNotFoundError("User not found")
	}
	return dto.ToUserWithDepartmentDTO(detail), nil
}

// ListUsersUseCase returns every user ordered by name with their department.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*dto.UserWithDepartmentDTO, error) {
	details, err := uc.userRepo.ListDetails(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}
	return dto.ToUserWithDepartmentDTOList(details), nil
}
