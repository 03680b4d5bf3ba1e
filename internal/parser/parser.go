// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package parser

import (
	"path/filepath"
	"strings"
)

// Result is the outcome of one extraction as held by a viewing session.
// Exactly one of Text or Err is meaningful. Output collapses the pair back
// into the single display string the UI renders.
type Result struct {
	Text string `json:"text"`
	Err  string `json:"error,omitempty"`
}

// ResultFrom builds a Result from an Extract return pair.
func ResultFrom(text string, err error) Result {
	if err != nil {
		return Result{Err: err.Error()}
	}
	return Result{Text: text}
}

// Failed reports whether the extraction produced an error description
// instead of document text.
func (r Result) Failed() bool {
	return r.Err != ""
}

// Output returns the extracted text, or the error description on failure.
// Both cases render in the same display area; only content distinguishes them.
func (r Result) Output() string {
	if r.Err != "" {
		return r.Err
	}
	return r.Text
}

// IsSupportedUpload checks if a declared filename passes the upload filter.
// The extension is informational only: content is always parsed as DOCX
// structure, so a genuine PDF will surface the parser's error text.
func IsSupportedUpload(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".pdf" || ext == ".docx"
}

// IsTemporaryFile checks if a file is a temporary file (e.g., ~$doc.docx)
func IsTemporaryFile(filePath string) bool {
	base := filepath.Base(filePath)
	if strings.HasPrefix(base, "~$") {
		return true
	}
	if strings.HasPrefix(base, "._") {
		return true
	}
	if strings.HasSuffix(base, ".tmp") {
		return true
	}
	return false
}
