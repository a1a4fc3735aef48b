package department

import (
	"github.com/civicdesk/civicdesk/internal/application/department/usecases"
	domain "github.com/civicdesk/civicdesk/internal/domain/department"
)

// Staff is a pointer so that an explicit 0 fails min rather than required.
type CreateDepartmentRequest struct {
	Name        string   `json:"name" binding:"required,notblank,max=100" example:"Public Works"`
	Head        string   `json:"head" binding:"required,notblank,max=100" example:"Jordan Price"`
	Staff       *int     `json:"staff" binding:"required,min=1,max=10000" example:"4"`
	Specialties []string `json:"specialties" binding:"omitempty,dive,notblank,max=100"`
}

func (r *CreateDepartmentRequest) ToCommand() usecases.CreateDepartmentCommand {
	return usecases.CreateDepartmentCommand{
		Name:        r.Name,
		Head:        r.Head,
		Staff:       *r.Staff,
		Specialties: r.Specialties,
	}
}

type UpdateDepartmentRequest struct {
	Name        *string   `json:"name" binding:"omitempty,notblank,max=100"`
	Head        *string   `json:"head" binding:"omitempty,notblank,max=100"`
	Staff       *int      `json:"staff" binding:"omitempty,min=1,max=10000"`
	Specialties *[]string `json:"specialties" binding:"omitempty,dive,notblank,max=100"`
}

func (r *UpdateDepartmentRequest) ToCommand(id uint) usecases.UpdateDepartmentCommand {
	return usecases.UpdateDepartmentCommand{
		ID: id,
		Patch: domain.Patch{
			Name:        r.Name,
			Head:        r.Head,
			Staff:       r.Staff,
			Specialties: r.Specialties,
		},
	}
}
