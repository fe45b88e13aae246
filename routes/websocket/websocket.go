package websocket

import (
	"MITSAssistant/controllers"
	"MITSAssistant/middleware"
	"MITSAssistant/pkg/app"

	"github.com/gin-gonic/gin"
)

func Register(r *gin.Engine, a *app.App, limiter *middleware.RateLimiter) {
	r.GET("/ws/chat", limiter.Handler(), controllers.ChatWS(a.Chat, a.Log))
}
