package dto

import (
	"time"

	deptdto "github.com/civicdesk/civicdesk/internal/application/department/dto"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/shared/mapper"
)

type UserDTO struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        *string    `json:"phone"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	DepartmentID *uint      `json:"departmentId"`
	Permissions  []string   `json:"permissions"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// UserWithDepartmentDTO embeds the department, null when the user has none.
type UserWithDepartmentDTO struct {
	UserDTO
	Department *deptdto.DepartmentDTO `json:"department"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email().String(),
		Phone:        u.Phone(),
		Role:         u.Role().String(),
		Status:       u.Status().String(),
		DepartmentID: u.DepartmentID(),
		Permissions:  u.Permissions(),
		LastLogin:    u.LastLogin(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func ToUserWithDepartmentDTO(d *user.Detail) *UserWithDepartmentDTO {
	if d == nil || d.User == nil {
		return nil
	}
	return &UserWithDepartmentDTO{
		UserDTO:    *ToUserDTO(d.User),
		Department: deptdto.ToDepartmentDTO(d.Department),
	}
}

func ToUserWithDepartmentDTOList(details []*user.Detail) []*UserWithDepartmentDTO {
	return mapper.MapSlice(details, ToUserWithDepartmentDTO)
}
