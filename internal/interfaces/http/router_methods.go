package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/interfaces/http/middleware"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/routes"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	utils.SetupValidator()

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, "Route not found")
	})

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.setupSwagger()

	api := r.engine.Group("/api")
	writeLimit := r.writeLimit()

	routes.SetupIssueRoutes(api, &routes.IssueRouteConfig{
		IssueHandler: r.hdlrs.issueHandler,
		WriteLimit:   writeLimit,
	})
	routes.SetupDepartmentRoutes(api, &routes.DepartmentRouteConfig{
		DepartmentHandler: r.hdlrs.departmentHandler,
		WriteLimit:        writeLimit,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler: r.hdlrs.userHandler,
		WriteLimit:  writeLimit,
	})
	routes.SetupAnalyticsRoutes(api, &routes.AnalyticsRouteConfig{
		AnalyticsHandler: r.hdlrs.analyticsHandler,
	})
}
