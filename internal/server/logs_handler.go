// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/docview/internal/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development
		return true
	},
}

// LogStreamHandler streams process log lines to the browser over WebSocket.
// The live log pane is the tool's old console output made visible.
type LogStreamHandler struct {
	log *logger.Logger
}

// NewLogStreamHandler creates a new log stream handler
func NewLogStreamHandler(log *logger.Logger) *LogStreamHandler {
	return &LogStreamHandler{log: log}
}

// HandleLogStream handles GET /ws/logs connections
func (h *LogStreamHandler) HandleLogStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ch := h.log.Subscribe()
	if ch == nil {
		http.Error(w, "Log stream unavailable", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Unsubscribe(ch)
		logger.GetDefault().Errorf("Failed to upgrade log stream connection: %v", err)
		return
	}
	defer conn.Close()
	defer h.log.Unsubscribe(ch)

	// Drain client messages so close frames and pongs are processed
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	for {
		select {
		case line, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
				return
			}
		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		case <-r.Context().Done():
			return
		}
	}
}
