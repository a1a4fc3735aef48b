package models

import (
	"gorm.io/datatypes"

	"github.com/civicdesk/civicdesk/internal/shared/constants"
)

type DepartmentModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"size:100;not null;index"`
	Head        string         `gorm:"size:100;not null"`
	Staff       int            `gorm:"not null"`
	Specialties datatypes.JSON `gorm:"not null"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (DepartmentModel) TableName() string {
	return constants.TableDepartments
}
