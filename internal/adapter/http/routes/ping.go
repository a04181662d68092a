package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const PathPing = "/ping"

// ping godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, ping)
}
