package user

import (
	"github.com/civicdesk/civicdesk/internal/application/user/usecases"
	domain "github.com/civicdesk/civicdesk/internal/domain/user"
	vo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/nullable"
)

type CreateUserRequest struct {
	Name         string   `json:"name" binding:"required,notblank,max=100" example:"Maria Santos"`
	Email        string   `json:"email" binding:"required,email,max=255" example:"maria.santos@city.gov"`
	Phone        *string  `json:"phone" binding:"omitempty,max=32"`
	Role         string   `json:"role" binding:"required,oneof=administrator department-head staff-member viewer" example:"staff-member"`
	Status       string   `json:"status" binding:"omitempty,oneof=active inactive suspended" example:"active"`
	DepartmentID *uint    `json:"departmentId" binding:"omitempty,min=1"`
	Permissions  []string `json:"permissions" binding:"omitempty,dive,notblank,max=100"`
}

func (r *CreateUserRequest) ToCommand() usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Role:         r.Role,
		Status:       r.Status,
		DepartmentID: r.DepartmentID,
		Permissions:  r.Permissions,
	}
}

type UpdateUserRequest struct {
	Name         *string                `json:"name" binding:"omitempty,notblank,max=100"`
	Email        *string                `json:"email" binding:"omitempty,email,max=255"`
	Phone        nullable.Field[string] `json:"phone" binding:"omitempty,max=32" swaggertype:"string"`
	Role         *string                `json:"role" binding:"omitempty,oneof=administrator department-head staff-member viewer"`
	Status       *string                `json:"status" binding:"omitempty,oneof=active inactive suspended"`
	DepartmentID nullable.Field[uint]   `json:"departmentId" binding:"omitempty,min=1" swaggertype:"integer"`
	Permissions  *[]string              `json:"permissions" binding:"omitempty,dive,notblank,max=100"`
}

func (r *UpdateUserRequest) ToCommand(id uint) usecases.UpdateUserCommand {
	patch := domain.Patch{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		DepartmentID: r.DepartmentID,
		Permissions:  r.Permissions,
	}
	if r.Role != nil {
		role := vo.Role(*r.Role)
		patch.Role = &role
	}
	if r.Status != nil {
		status := vo.UserStatus(*r.Status)
		patch.Status = &status
	}
	return usecases.UpdateUserCommand{ID: id, Patch: patch}
}
