package dto

import (
	"time"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/shared/mapper"
)

type DepartmentDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Head        string    `json:"head"`
	Staff       int       `json:"staff"`
	Specialties []string  `json:"specialties"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DepartmentStatsDTO is a department with its current load. AvgResolutionTime
// is rendered as "<n> days".
type DepartmentStatsDTO struct {
	DepartmentDTO
	ActiveIssues      int64   `json:"activeIssues"`
	AvgResolutionTime string  `json:"avgResolutionTime"`
	Workload          float64 `json:"workload"`
}

func ToDepartmentDTO(d *department.Department) *DepartmentDTO {
	if d == nil {
		return nil
	}
	return &DepartmentDTO{
		ID:          d.ID(),
		Name:        d.Name(),
		Head:        d.Head(),
		Staff:       d.Staff(),
		Specialties: d.Specialties(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

func ToDepartmentDTOList(departments []*department.Department) []*DepartmentDTO {
	return mapper.MapSlice(departments, ToDepartmentDTO)
}
