package mappers

import (
	"fmt"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/utils/jsonutil"
)

// DepartmentMapper converts between department entities and persistence models.
type DepartmentMapper interface {
	ToModel(d *department.Department) *models.DepartmentModel
	ToDomain(model *models.DepartmentModel) (*department.Department, error)
}

type departmentMapper struct{}

func NewDepartmentMapper() DepartmentMapper {
	return &departmentMapper{}
}

func (m *departmentMapper) ToModel(d *department.Department) *models.DepartmentModel {
	return &models.DepartmentModel{
		ID:          d.ID(),
		Name:        d.Name(),
		Head:        d.Head(),
		Staff:       d.Staff(),
		Specialties: jsonutil.StringsToJSON(d.Specialties()),
		CreatedAt:   d.CreatedAt().UnixMilli(),
		UpdatedAt:   d.UpdatedAt().UnixMilli(),
	}
}

func (m *departmentMapper) ToDomain(model *models.DepartmentModel) (*department.Department, error) {
	specialties, err := jsonutil.JSONToStrings(model.Specialties)
	if err != nil {
		return nil, fmt.Errorf("department %d specialties: %w", model.ID, err)
	}
	return department.ReconstructDepartment(
		model.ID,
		model.Name,
		model.Head,
		model.Staff,
		specialties,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}
