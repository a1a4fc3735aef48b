package http

import (
	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/analytics"
	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/issue"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/infrastructure/repository"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	departmentRepo department.Repository
	userRepo       user.Repository
	issueRepo      issue.Repository
	commentRepo    issue.CommentRepository
	analyticsRepo  analytics.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		departmentRepo: repository.NewDepartmentRepository(db),
		userRepo:       repository.NewUserRepository(db),
		issueRepo:      repository.NewIssueRepository(db, log),
		commentRepo:    repository.NewCommentRepository(db),
		analyticsRepo:  repository.NewAnalyticsRepository(db),
	}
}
