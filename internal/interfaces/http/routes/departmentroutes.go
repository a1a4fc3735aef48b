package routes

import (
	"github.com/gin-gonic/gin"

	departmenthandlers "github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/department"
)

type DepartmentRouteConfig struct {
	DepartmentHandler *departmenthandlers.Handler
	WriteLimit        gin.HandlerFunc
}

func SetupDepartmentRoutes(api *gin.RouterGroup, config *DepartmentRouteConfig) {
	departments := api.Group("/departments")
	{
		departments.GET("",
			config.DepartmentHandler.ListDepartments)
		departments.POST("",
			withGuard(config.WriteLimit, config.DepartmentHandler.CreateDepartment)...)

		// Must come BEFORE /:id
		departments.GET("/stats",
			config.DepartmentHandler.ListDepartmentStats)

		departments.GET("/:id",
			config.DepartmentHandler.GetDepartment)
		departments.PUT("/:id",
			withGuard(config.WriteLimit, config.DepartmentHandler.UpdateDepartment)...)
	}
}
