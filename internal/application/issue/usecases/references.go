package usecases

import (
	"context"
	"fmt"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/services/richtext"
)

// referenceChecker verifies that assignee and department ids point at
// existing rows, reporting misses against their JSON path.
type referenceChecker struct {
	userRepo       user.Repository
	departmentRepo department.Repository
	logger         logger.Interface
}

func (r referenceChecker) check(ctx context.Context, assignedToID, departmentID *uint) error {
	var fields []errors.FieldError

	if assignedToID != nil {
		ok, err := r.userRepo.Exists(ctx, *assignedToID)
		if err != nil {
			r.logger.Errorw("failed to check assignee", "user_id", *assignedToID, "error", err)
			return errors.NewInternalError("failed to check assignee")
		}
		if !ok {
			fields = append(fields, errors.FieldError{
				Path:    "assignedToId",
				Message: fmt.Sprintf("user %d does not exist", *assignedToID),
			})
		}
	}

	if departmentID != nil {
		ok, err := r.departmentRepo.Exists(ctx, *departmentID)
		if err != nil {
			r.logger.Errorw("failed to check department", "department_id", *departmentID, "error", err)
			return errors.NewInternalError("failed to check department")
		}
		if !ok {
			fields = append(fields, errors.FieldError{
				Path:    "departmentId",
				Message: fmt.Sprintf("department %d does not exist", *departmentID),
			})
		}
	}

	if len(fields) > 0 {
		return errors.NewValidationError("Invalid issue data", fields...)
	}
	return nil
}

// cleanOptional sanitizes free text; text that is empty once cleaned is dropped.
func cleanOptional(text richtext.Service, s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := text.Clean(*s)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
