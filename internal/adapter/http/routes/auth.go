package routes

import (
	"production_scheduler/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/token", authHandler.ExchangeLinkToken)
		auth.POST("/admin", authHandler.AdminLogin)
	}
}
