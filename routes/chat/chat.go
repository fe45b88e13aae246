package chat

import (
	"MITSAssistant/controllers"
	"MITSAssistant/middleware"
	"MITSAssistant/pkg/app"

	"github.com/gin-gonic/gin"
)

// Register registers the public chat API.
func Register(g *gin.RouterGroup, a *app.App, limiter *middleware.RateLimiter) {
	g.POST("/chat", limiter.Handler(), controllers.Chat(a.Chat, a.Log))
	g.GET("/history/:sessionId", controllers.History(a.Store))
	g.GET("/suggestions", controllers.Suggestions())
	g.GET("/health", controllers.Health(a.Store))
}
