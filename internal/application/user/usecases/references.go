package usecases

import (
	"context"
	"fmt"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	vo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

const emailInUseMsg = "A user with this email already exists"

// ensureEmailAvailable rejects an email held by any user other than selfID.
func ensureEmailAvailable(ctx context.Context, repo user.Repository, log logger.Interface, email string, selfID uint) error {
	normalized, err := vo.NewEmail(email)
	if err != nil {
		return errors.NewFieldError("email", err.Error())
	}
	existing, err := repo.GetByEmail(ctx, normalized.String())
	if err != nil {
		log.Errorw("failed to look up user by email", "error", err)
		return errors.NewInternalError("failed to check email")
	}
	if existing != nil && existing.ID() != selfID {
		return errors.NewConflictError(emailInUseMsg)
	}
	return nil
}

func ensureDepartmentExists(ctx context.Context, repo department.Repository, log logger.Interface, id *uint) error {
	if id == nil {
		return nil
	}
	ok, err := repo.Exists(ctx, *id)
	if err != nil {
		log.Errorw("failed to check department", "department_id", *id, "error", err)
		return errors.NewInternalError("failed to check department")
	}
	if !ok {
		return errors.NewFieldError("departmentId", fmt.Sprintf("department %d does not exist", *id))
	}
	return nil
}
