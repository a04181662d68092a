package routes

import (
	"production_scheduler/internal/adapter/http/handlers"
	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

const PathPortal = "/portal"

// addPortalRoutes mounts the customer views. Every route needs a customer session.
func addPortalRoutes(rg *gin.RouterGroup, portalHandler *handlers.PortalHandler, auth usecase.IAuthUseCase) {
	portal := rg.Group(PathPortal, handlers.RequireSession(auth, entities.RoleCustomer))
	{
		portal.GET("/events", portalHandler.Events)
		portal.GET("/orders", portalHandler.Orders)
		portal.GET("/summary", portalHandler.Summary)
		portal.GET("/export", portalHandler.Export)
		portal.GET("/print", portalHandler.Print)
	}
}
