package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"MITSAssistant/pkg/chat"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	wsReadLimit = 64 << 10
	wsReadWait  = 60 * time.Second
	wsWriteWait = 10 * time.Second
	wsTimeout   = 75 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS handled at HTTP level; allow WS here
		return true
	},
}

type wsStartPayload struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// ChatWS runs one chat turn over a websocket.
// Client protocol (JSON messages):
//
//	-> {type: "start", message: string, sessionId?: string}
//	<- {type: "session", sessionId: string}
//	<- {type: "message", message: Message}
//	<- {type: "done"}
//	<- {type: "error", error: string}
//
// A {type: "stop"} frame sent while the answer is pending cancels it.
func ChatWS(svc *chat.Service, log *zap.Logger) gin.HandlerFunc {
	log = log.Named("ws")
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn("upgrade error", zap.Error(err))
			return
		}
		defer conn.Close()

		var writeMu sync.Mutex
		send := func(v any) {
			writeMu.Lock()
			defer writeMu.Unlock()
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(v); err != nil {
				log.Debug("write failed", zap.Error(err))
			}
		}

		conn.SetReadLimit(wsReadLimit)
		_ = conn.SetReadDeadline(time.Now().Add(wsReadWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsReadWait))
		})

		// Read exactly one start message per connection
		_, msgBytes, err := conn.ReadMessage()
		if err != nil {
			log.Debug("read start failed", zap.Error(err))
			return
		}
		var start wsStartPayload
		if err := json.Unmarshal(msgBytes, &start); err != nil || strings.ToLower(start.Type) != "start" {
			send(gin.H{"type": "error", "error": "invalid start payload"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), wsTimeout)
		defer cancel()

		// Reader goroutine to listen for {type:"stop"} and disconnects
		readDone := make(chan struct{})
		go func() {
			defer close(readDone)
			for {
				_ = conn.SetReadDeadline(time.Now().Add(wsReadWait))
				mt, msg, err := conn.ReadMessage()
				if err != nil {
					cancel()
					return
				}
				if mt != websocket.TextMessage && mt != websocket.BinaryMessage {
					continue
				}
				var obj struct {
					Type string `json:"type"`
				}
				_ = json.Unmarshal(msg, &obj)
				if strings.ToLower(strings.TrimSpace(obj.Type)) == "stop" {
					cancel()
					return
				}
			}
		}()

		resp, err := svc.HandleNotify(ctx, chat.Request{Message: start.Message, SessionID: start.SessionID}, func(id string) {
			send(gin.H{"type": "session", "sessionId": id})
		})
		if err != nil {
			log.Warn("chat failed", zap.Error(err))
			send(gin.H{"type": "error", "error": err.Error()})
		} else {
			send(gin.H{"type": "message", "message": resp.Message})
			send(gin.H{"type": "done"})
		}

		writeMu.Lock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(wsWriteWait))
		writeMu.Unlock()
		// unblock the reader if the client never answers the close frame
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		<-readDone
	}
}
