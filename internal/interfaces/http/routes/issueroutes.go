package routes

import (
	"github.com/gin-gonic/gin"

	issuehandlers "github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/issue"
)

type IssueRouteConfig struct {
	IssueHandler *issuehandlers.Handler
	// WriteLimit guards mutating routes; nil disables it.
	WriteLimit gin.HandlerFunc
}

func SetupIssueRoutes(api *gin.RouterGroup, config *IssueRouteConfig) {
	issues := api.Group("/issues")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		issues.GET("",
			config.IssueHandler.ListIssues)
		issues.POST("",
			withGuard(config.WriteLimit, config.IssueHandler.CreateIssue)...)
		issues.GET("/unassigned",
			config.IssueHandler.ListUnassignedIssues)

		// Sub-resources and actions
		issues.POST("/:id/assign",
			withGuard(config.WriteLimit, config.IssueHandler.AssignIssue)...)
		issues.GET("/:id/comments",
			config.IssueHandler.ListComments)
		issues.POST("/:id/comments",
			withGuard(config.WriteLimit, config.IssueHandler.CreateComment)...)

		// Generic parameterized routes (must come LAST)
		issues.GET("/:id",
			config.IssueHandler.GetIssue)
		issues.PUT("/:id",
			withGuard(config.WriteLimit, config.IssueHandler.UpdateIssue)...)
	}
}
