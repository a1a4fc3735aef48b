package http

import (
	"gorm.io/gorm"

	analyticsUsecases "github.com/civicdesk/civicdesk/internal/application/analytics/usecases"
	departmentUsecases "github.com/civicdesk/civicdesk/internal/application/department/usecases"
	issueUsecases "github.com/civicdesk/civicdesk/internal/application/issue/usecases"
	userUsecases "github.com/civicdesk/civicdesk/internal/application/user/usecases"
	"github.com/civicdesk/civicdesk/internal/infrastructure/config"
	"github.com/civicdesk/civicdesk/internal/shared/db"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/services/richtext"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Issue
	createIssueUC          *issueUsecases.CreateIssueUseCase
	updateIssueUC          *issueUsecases.UpdateIssueUseCase
	assignIssueUC          *issueUsecases.AssignIssueUseCase
	getIssueUC             *issueUsecases.GetIssueUseCase
	listIssuesUC           *issueUsecases.ListIssuesUseCase
	listUnassignedIssuesUC *issueUsecases.ListUnassignedIssuesUseCase
	createCommentUC        *issueUsecases.CreateCommentUseCase
	listCommentsUC         *issueUsecases.ListCommentsUseCase

	// Department
	createDepartmentUC    *departmentUsecases.CreateDepartmentUseCase
	updateDepartmentUC    *departmentUsecases.UpdateDepartmentUseCase
	getDepartmentUC       *departmentUsecases.GetDepartmentUseCase
	listDepartmentsUC     *departmentUsecases.ListDepartmentsUseCase
	listDepartmentStatsUC *departmentUsecases.ListDepartmentStatsUseCase

	// User
	createUserUC *userUsecases.CreateUserUseCase
	updateUserUC *userUsecases.UpdateUserUseCase
	getUserUC    *userUsecases.GetUserUseCase
	listUsersUC  *userUsecases.ListUsersUseCase

	// Analytics
	getStatsUC              *analyticsUsecases.GetStatsUseCase
	getIssuesByDepartmentUC *analyticsUsecases.GetIssuesByDepartmentUseCase
	getIssuesTrendUC        *analyticsUsecases.GetIssuesTrendUseCase
}

func newUseCases(repos *repositories, gdb *gorm.DB, cfg *config.Config, log logger.Interface) *allUseCases {
	tx := db.NewTransactionManager(gdb)
	text := richtext.NewService()

	return &allUseCases{
		createIssueUC:          issueUsecases.NewCreateIssueUseCase(repos.issueRepo, repos.userRepo, repos.departmentRepo, text, log),
		updateIssueUC:          issueUsecases.NewUpdateIssueUseCase(repos.issueRepo, repos.userRepo, repos.departmentRepo, tx, text, cfg.Issues.StrictTransitions, log),
		assignIssueUC:          issueUsecases.NewAssignIssueUseCase(repos.issueRepo, repos.userRepo, repos.departmentRepo, log),
		getIssueUC:             issueUsecases.NewGetIssueUseCase(repos.issueRepo, log),
		listIssuesUC:           issueUsecases.NewListIssuesUseCase(repos.issueRepo, cfg.Issues.DefaultListLimit, cfg.Issues.MaxListLimit, log),
		listUnassignedIssuesUC: issueUsecases.NewListUnassignedIssuesUseCase(repos.issueRepo, log),
		createCommentUC:        issueUsecases.NewCreateCommentUseCase(repos.issueRepo, repos.commentRepo, repos.userRepo, text, log),
		listCommentsUC:         issueUsecases.NewListCommentsUseCase(repos.commentRepo, text, log),

		createDepartmentUC:    departmentUsecases.NewCreateDepartmentUseCase(repos.departmentRepo, log),
		updateDepartmentUC:    departmentUsecases.NewUpdateDepartmentUseCase(repos.departmentRepo, tx, log),
		getDepartmentUC:       departmentUsecases.NewGetDepartmentUseCase(repos.departmentRepo, log),
		listDepartmentsUC:     departmentUsecases.NewListDepartmentsUseCase(repos.departmentRepo, log),
		listDepartmentStatsUC: departmentUsecases.NewListDepartmentStatsUseCase(repos.departmentRepo, repos.analyticsRepo, cfg.Analytics.FallbackDepartmentResolution, log),

		createUserUC: userUsecases.NewCreateUserUseCase(repos.userRepo, repos.departmentRepo, log),
		updateUserUC: userUsecases.NewUpdateUserUseCase(repos.userRepo, repos.departmentRepo, tx, log),
		getUserUC:    userUsecases.NewGetUserUseCase(repos.userRepo, log),
		listUsersUC:  userUsecases.NewListUsersUseCase(repos.userRepo, log),

		getStatsUC:              analyticsUsecases.NewGetStatsUseCase(repos.analyticsRepo, cfg.Analytics.FallbackAvgResolutionDays, log),
		getIssuesByDepartmentUC: analyticsUsecases.NewGetIssuesByDepartmentUseCase(repos.analyticsRepo, log),
		getIssuesTrendUC:        analyticsUsecases.NewGetIssuesTrendUseCase(repos.analyticsRepo, cfg.Analytics.MaxTrendDays, log),
	}
}
