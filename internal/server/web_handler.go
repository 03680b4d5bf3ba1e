// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package server

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/docview/internal/logger"
	"github.com/docview/internal/session"
)

//go:embed templates/*
var templatesFS embed.FS

const sessionCookie = "docview_session"

// WebHandler serves the upload page and session lifecycle endpoints
type WebHandler struct {
	store *session.Store
}

// NewWebHandler creates a new web handler with dependencies
func NewWebHandler(store *session.Store) *WebHandler {
	return &WebHandler{store: store}
}

// renderTemplate is a helper function to render templates with base layout
func renderTemplate(w http.ResponseWriter, tmplName string, data interface{}) error {
	// Parse both base.html and the requested template together
	tmpl, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+tmplName)
	if err != nil {
		logger.GetDefault().Errorf("Failed to parse template %s: %v", tmplName, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		logger.GetDefault().Errorf("Failed to execute template %s: %v", tmplName, err)
		return err
	}
	return nil
}

type indexData struct {
	HasResult bool
	Filename  string
	Output    string
	Failed    bool
}

// ensureSession returns the session ID cookie, minting one when absent.
func ensureSession(store *session.Store, w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := store.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

// HandleIndex serves the upload page with the session's current result.
// Extracted text and error descriptions render in the same display area;
// the error variant only differs by styling.
func (h *WebHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data := indexData{}
	if state, ok := h.store.Get(ensureSession(h.store, w, r)); ok {
		data.HasResult = true
		data.Filename = state.Filename
		data.Output = state.Result.Output()
		data.Failed = state.Result.Failed()
	}

	if err := renderTemplate(w, "index.html", data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}

// HandleClearSession handles POST /session/clear from the web UI
func (h *WebHandler) HandleClearSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.store.Clear(ensureSession(h.store, w, r))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleSessionAPI handles DELETE /api/v1/session requests
func (h *WebHandler) HandleSessionAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
		return
	}

	h.store.Clear(ensureSession(h.store, w, r))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
