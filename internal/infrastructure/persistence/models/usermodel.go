package models

import (
	"gorm.io/datatypes"

	"github.com/civicdesk/civicdesk/internal/shared/constants"
)

type UserModel struct {
	ID           uint           `gorm:"primaryKey"`
	Name         string         `gorm:"size:100;not null;index"`
	Email        string         `gorm:"size:255;not null;uniqueIndex"`
	Phone        *string        `gorm:"size:32"`
	Role         string         `gorm:"size:32;not null"`
	Status       string         `gorm:"size:16;not null;default:active"`
	DepartmentID *uint          `gorm:"index"`
	Permissions  datatypes.JSON `gorm:"not null"`
	LastLogin    *int64
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
