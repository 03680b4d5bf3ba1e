// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package parser

import (
	"errors"
	"testing"
)

func TestResult_Output(t *testing.T) {
	ok := ResultFrom("extracted text", nil)
	if ok.Failed() {
		t.Error("Expected success result not to report failure")
	}
	if ok.Output() != "extracted text" {
		t.Errorf("Expected text output, got %q", ok.Output())
	}

	failed := ResultFrom("", errors.New("failed to open DOCX file: zip: not a valid zip file"))
	if !failed.Failed() {
		t.Error("Expected error result to report failure")
	}
	if failed.Output() != "failed to open DOCX file: zip: not a valid zip file" {
		t.Errorf("Expected error description as output, got %q", failed.Output())
	}
}

func TestIsSupportedUpload(t *testing.T) {
	cases := []struct {
		filename string
		expected bool
	}{
		{"report.docx", true},
		{"report.DOCX", true},
		{"scan.pdf", true},
		{"scan.PDF", true},
		{"notes.txt", false},
		{"sheet.xlsx", false},
		{"noextension", false},
	}

	for _, tc := range cases {
		if got := IsSupportedUpload(tc.filename); got != tc.expected {
			t.Errorf("IsSupportedUpload(%q) = %v, expected %v", tc.filename, got, tc.expected)
		}
	}
}

func TestIsTemporaryFile(t *testing.T) {
	cases := []struct {
		path     string
		expected bool
	}{
		{"/docs/~$report.docx", true},
		{"/docs/._report.docx", true},
		{"/docs/report.docx.tmp", true},
		{"/docs/report.docx", false},
	}

	for _, tc := range cases {
		if got := IsTemporaryFile(tc.path); got != tc.expected {
			t.Errorf("IsTemporaryFile(%q) = %v, expected %v", tc.path, got, tc.expected)
		}
	}
}
