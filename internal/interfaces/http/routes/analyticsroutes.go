package routes

import (
	"github.com/gin-gonic/gin"

	analyticshandlers "github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/analytics"
)

type AnalyticsRouteConfig struct {
	AnalyticsHandler *analyticshandlers.Handler
}

func SetupAnalyticsRoutes(api *gin.RouterGroup, config *AnalyticsRouteConfig) {
	analytics := api.Group("/analytics")
	{
		analytics.GET("/stats",
			config.AnalyticsHandler.GetStats)
		analytics.GET("/issues-by-department",
			config.AnalyticsHandler.GetIssuesByDepartment)
		analytics.GET("/issues-trend",
			config.AnalyticsHandler.GetIssuesTrend)
	}
}
