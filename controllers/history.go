package controllers

import (
	"net/http"

	"MITSAssistant/models"
	"MITSAssistant/pkg/store"

	"github.com/gin-gonic/gin"
)

// History returns a session transcript, oldest first. Unknown sessions have
// an empty transcript.
func History(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		msgs, err := st.SessionMessages(c.Request.Context(), c.Param("sessionId"))
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]models.Message, 0, len(msgs))
		for _, m := range msgs {
			out = append(out, m.View())
		}
		c.JSON(http.StatusOK, out)
	}
}

// Health reports liveness and the size of the knowledge base.
func Health(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		pages, err := st.ListContent(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "pages": len(pages)})
	}
}
