package routes

import (
	"gg-note/ggnote/services"

	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes sets up the change-notification endpoint.
func RegisterWebSocketRoutes(router *gin.Engine, wsService services.WebSocketServiceInterface) {
	router.GET("/api/v1/ws", func(c *gin.Context) {
		wsService.HandleConnection(c)
	})
}
