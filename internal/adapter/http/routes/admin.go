package routes

import (
	"production_scheduler/internal/adapter/http/handlers"
	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler, auth usecase.IAuthUseCase) {
	admin := rg.Group(PathAdmin, handlers.RequireSession(auth, entities.RoleAdmin))
	{
		admin.GET("/orders", adminHandler.ListOrders)
		admin.PUT("/orders", adminHandler.SaveOrder)
		admin.POST("/orders/batch", adminHandler.SaveOrders)
		admin.POST("/cache/invalidate", adminHandler.InvalidateCache)
	}
}
