package routes

import (
	"net/http"

	"MITSAssistant/middleware"
	"MITSAssistant/pkg/app"

	"github.com/gin-gonic/gin"

	adminRoutes "MITSAssistant/routes/admin"
	chatRoutes "MITSAssistant/routes/chat"
	staticRoutes "MITSAssistant/routes/static"
	websocketRoutes "MITSAssistant/routes/websocket"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	limiter := middleware.NewRateLimiter(a.Config.RateLimitWindow, a.Config.RateLimitCapacity)

	if a.Config.WebDir == "" {
		r.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"msg": "MITS Assistant backend running"})
		})
	}

	api := r.Group("/api")
	chatRoutes.Register(api, a, limiter)
	adminRoutes.Register(api, a)
	websocketRoutes.Register(r, a, limiter)
	staticRoutes.Register(r, a.Config.WebDir)
}
