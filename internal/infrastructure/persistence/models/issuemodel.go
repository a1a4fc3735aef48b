package models

import (
	"gorm.io/datatypes"

	"github.com/civicdesk/civicdesk/internal/shared/constants"
)

type IssueModel struct {
	ID                  uint    `gorm:"primaryKey"`
	Title               string  `gorm:"size:200;not null"`
	Description         *string `gorm:"type:text"`
	Status              string  `gorm:"size:20;not null;default:pending;index"`
	Priority            string  `gorm:"size:20;not null;default:medium;index"`
	Location            string  `gorm:"size:255;not null"`
	ReporterName        string  `gorm:"size:100;not null"`
	ReporterEmail       *string `gorm:"size:255"`
	ReporterPhone       *string `gorm:"size:32"`
	AssignedToID        *uint   `gorm:"index"`
	DepartmentID        *uint   `gorm:"index"`
	EstimatedResolution *int64
	ResolvedAt          *int64
	Notes               *string        `gorm:"type:text"`
	Attachments         datatypes.JSON `gorm:"not null"`
	CreatedAt           int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt           int64          `gorm:"autoUpdateTime:milli;not null"`

	// No foreign key constraints or associations; relations are resolved
	// by the repositories.
}

func (IssueModel) TableName() string {
	return constants.TableIssues
}

type IssueCommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	IssueID    uint   `gorm:"not null;index"`
	UserID     uint   `gorm:"not null;index"`
	Comment    string `gorm:"type:text;not null"`
	IsInternal bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (IssueCommentModel) TableName() string {
	return constants.TableIssueComments
}
