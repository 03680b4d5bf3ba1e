// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/docview/internal/logger"
	"github.com/docview/internal/parser"
	"github.com/docview/internal/session"
)

// UploadHandler holds dependencies for the upload and extract endpoints
type UploadHandler struct {
	store          *session.Store
	log            *logger.Logger
	maxUploadBytes int64
}

// NewUploadHandler creates a new upload handler with dependencies
func NewUploadHandler(store *session.Store, log *logger.Logger, maxUploadBytes int64) *UploadHandler {
	return &UploadHandler{
		store:          store,
		log:            log,
		maxUploadBytes: maxUploadBytes,
	}
}

// HandleUpload handles POST /upload from the web form. The extraction result,
// success or failure, lands in the session and the browser is sent back to
// the index page to display it.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := ensureSession(h.store, w, r)

	filename, result := h.extractUpload(w, r)
	h.logResult(filename, result)
	h.store.Put(id, filename, result)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleExtractAPI handles POST /api/v1/extract requests. Unlike the web
// form, the API separates success and failure: text and error are distinct
// JSON fields and failures carry a non-200 status.
func (h *UploadHandler) HandleExtractAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("document")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid upload: %v", err)})
		return
	}
	defer file.Close()

	if !parser.IsSupportedUpload(header.Filename) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unsupported file type: %s", header.Filename)})
		return
	}

	text, err := parser.Extract(file)
	result := parser.ResultFrom(text, err)
	h.logResult(header.Filename, result)

	if result.Failed() {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"filename": header.Filename,
			"error":    result.Err,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"filename": header.Filename,
		"text":     result.Text,
	})
}

// extractUpload reads the multipart upload and runs the extractor. Every
// failure mode collapses into an error Result so the page always has
// something to display.
func (h *UploadHandler) extractUpload(w http.ResponseWriter, r *http.Request) (string, parser.Result) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("document")
	if err != nil {
		return "", parser.ResultFrom("", fmt.Errorf("invalid upload: %w", err))
	}
	defer file.Close()

	if !parser.IsSupportedUpload(header.Filename) {
		return header.Filename, parser.ResultFrom("", fmt.Errorf("unsupported file type: %s", header.Filename))
	}

	text, err := parser.Extract(file)
	return header.Filename, parser.ResultFrom(text, err)
}

// logResult emits the extraction outcome to the process log, preserving the
// console output the tool has always had: character count plus a short
// snippet of whatever will be displayed.
func (h *UploadHandler) logResult(filename string, result parser.Result) {
	output := result.Output()
	snippet := output
	if len(snippet) > 150 {
		snippet = snippet[:150] + "..."
	}

	if result.Failed() {
		h.log.Errorf("[TEXT EXTRACT] %s failed: %s", filename, result.Err)
		return
	}
	h.log.Printf("[TEXT EXTRACT] %s: %d characters", filename, len(output))
	h.log.Printf("[TEXT SNIPPET] %s", snippet)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
