package controllers

import (
	"errors"
	"net/http"

	"MITSAssistant/pkg/chat"
	"MITSAssistant/pkg/scraper"
	"MITSAssistant/pkg/store"

	"github.com/gin-gonic/gin"
)

// statusFor maps a pipeline error onto an HTTP status.
func statusFor(err error) int {
	var ne *scraper.NetworkError
	switch {
	case errors.Is(err, chat.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.As(err, &ne):
		return http.StatusServiceUnavailable
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)
	body := gin.H{"error": err.Error()}
	if status == http.StatusServiceUnavailable {
		body["type"] = "network_error"
	}
	c.AbortWithStatusJSON(status, body)
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
