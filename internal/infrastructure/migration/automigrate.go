package migration

import (
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the models in dependency order.
func AutoMigrateModels() []any {
	return []any{
		&models.DepartmentModel{},
		&models.UserModel{},
		&models.IssueModel{},
		&models.IssueCommentModel{},
	}
}
