package routes

import "github.com/gin-gonic/gin"

// withGuard prepends guard to the handler chain when it is set.
func withGuard(guard gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	if guard == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{guard, handler}
}
