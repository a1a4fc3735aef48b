package http

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/infrastructure/config"
	analyticsHandlers "github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/analytics"
	departmentHandlers "github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/department"
	healthHandlers "github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/health"
	issueHandlers "github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/issue"
	userHandlers "github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/user"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

const serviceName = "civicdesk"

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler     *healthHandlers.Handler
	issueHandler      *issueHandlers.Handler
	departmentHandler *departmentHandlers.Handler
	userHandler       *userHandlers.Handler
	analyticsHandler  *analyticsHandlers.Handler
}

func newHandlers(ucs *allUseCases, db *gorm.DB, cfg *config.Config, log logger.Interface) (*allHandlers, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	return &allHandlers{
		healthHandler: healthHandlers.NewHandler(sqlDB, serviceName, log),
		issueHandler: issueHandlers.NewHandler(
			ucs.createIssueUC,
			ucs.updateIssueUC,
			ucs.assignIssueUC,
			ucs.getIssueUC,
			ucs.listIssuesUC,
			ucs.listUnassignedIssuesUC,
			ucs.createCommentUC,
			ucs.listCommentsUC,
			log,
		),
		departmentHandler: departmentHandlers.NewHandler(
			ucs.createDepartmentUC,
			ucs.updateDepartmentUC,
			ucs.getDepartmentUC,
			ucs.listDepartmentsUC,
			ucs.listDepartmentStatsUC,
			log,
		),
		userHandler: userHandlers.NewHandler(
			ucs.createUserUC,
			ucs.updateUserUC,
			ucs.getUserUC,
			ucs.listUsersUC,
			log,
		),
		analyticsHandler: analyticsHandlers.NewHandler(
			ucs.getStatsUC,
			ucs.getIssuesByDepartmentUC,
			ucs.getIssuesTrendUC,
			cfg.Analytics.DefaultTrendDays,
			cfg.Analytics.MaxTrendDays,
			log,
		),
	}, nil
}
