package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/user"
)

type UserRouteConfig struct {
	UserHandler *userhandlers.Handler
	WriteLimit  gin.HandlerFunc
}

func SetupUserRoutes(api *gin.RouterGroup, config *UserRouteConfig) {
	users := api.Group("/users")
	{
		users.GET("",
			config.UserHandler.ListUsers)
		users.POST("",
			withGuard(config.WriteLimit, config.UserHandler.CreateUser)...)
		users.GET("/:id",
			config.UserHandler.GetUser)
		users.PUT("/:id",
			withGuard(config.WriteLimit, config.UserHandler.UpdateUser)...)
	}
}
