// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogger_WritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")
	l, err := NewLogger(logFile)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	l.Printf("extracted %d characters from %s", 42, "report.docx")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "extracted 42 characters from report.docx") {
		t.Errorf("Log file missing expected line, got: %s", data)
	}
	if !strings.Contains(string(data), "[INFO]") {
		t.Errorf("Log line missing level prefix, got: %s", data)
	}
}

func TestLogger_SubscribeReceivesLines(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")
	l, err := NewLogger(logFile)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	defer l.Close()

	ch := l.Subscribe()
	if ch == nil {
		t.Fatal("Expected non-nil subscriber channel")
	}
	defer l.Unsubscribe(ch)

	l.Errorf("extraction failed: %s", "not a valid zip file")

	select {
	case line := <-ch:
		if !strings.Contains(line, "[ERROR]") || !strings.Contains(line, "not a valid zip file") {
			t.Errorf("Unexpected broadcast line: %s", line)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for broadcast line")
	}
}

func TestLogger_SubscribeAfterClose(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test.log")
	l, err := NewLogger(logFile)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if ch := l.Subscribe(); ch != nil {
		t.Error("Expected nil channel when subscribing to a closed logger")
	}

	// Logging after close must be a no-op, not a panic.
	l.Printf("ignored")
}
