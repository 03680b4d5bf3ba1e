// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package server

import (
	"net/http"

	"github.com/docview/internal/config"
	"github.com/docview/internal/logger"
	"github.com/docview/internal/server/middleware"
	"github.com/docview/internal/session"
)

// Routes builds the HTTP handler for the docview server.
func Routes(cfg *config.Config, store *session.Store, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	web := NewWebHandler(store)
	upload := NewUploadHandler(store, log, cfg.MaxUploadBytes())
	logs := NewLogStreamHandler(log)

	mux.HandleFunc("/", web.HandleIndex)
	mux.HandleFunc("/upload", upload.HandleUpload)
	mux.HandleFunc("/session/clear", web.HandleClearSession)
	mux.HandleFunc("/api/v1/extract", upload.HandleExtractAPI)
	mux.HandleFunc("/api/v1/session", web.HandleSessionAPI)
	mux.HandleFunc("/api/v1/health", HandleHealth)
	mux.HandleFunc("/ws/logs", logs.HandleLogStream)

	return middleware.TrafficLogger(mux)
}
