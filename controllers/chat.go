package controllers

import (
	"net/http"

	"MITSAssistant/pkg/chat"
	"MITSAssistant/pkg/seed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Chat answers POST /api/chat.
func Chat(svc *chat.Service, log *zap.Logger) gin.HandlerFunc {
	log = log.Named("chat-api")
	return func(c *gin.Context) {
		var req chat.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request: "+err.Error())
			return
		}

		resp, err := svc.Handle(c.Request.Context(), req)
		if err != nil {
			log.Error("chat failed", zap.String("session_id", req.SessionID), zap.Error(err))
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// Suggestions lists the starter questions for an empty chat.
func Suggestions() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"suggestions": seed.Suggestions})
	}
}
