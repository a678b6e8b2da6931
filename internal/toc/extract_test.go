package toc

import (
	"strings"
	"testing"
)

func TestLooksSparse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		threshold int
		expected  bool
	}{
		{"empty", "", 300, true},
		{"whitespace and control noise", "\f\n\t   \x0c  \n\n", 300, true},
		{"punctuation only", strings.Repeat(".- _", 200), 300, true},
		{"just under threshold", strings.Repeat("a", 299), 300, true},
		{"at threshold", strings.Repeat("a", 300), 300, false},
		{"dense text", strings.Repeat("contents of the issue ", 50), 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksSparse(tt.input, tt.threshold); got != tt.expected {
				t.Errorf("looksSparse(threshold=%d) = %v, want %v", tt.threshold, got, tt.expected)
			}
		})
	}
}

func TestOCRSpan(t *testing.T) {
	dense := strings.Repeat("plenty of extracted text here ", 20)

	t.Run("sparse prefix selects exactly the eligible pages", func(t *testing.T) {
		pages := []PageRecord{
			{Number: 1, Text: "", Mode: ModeNative},
			{Number: 2, Text: "\f\n", Mode: ModeNative},
			{Number: 3, Text: "..", Mode: ModeNative},
			{Number: 4, Text: dense, Mode: ModeNative},
		}
		if got := ocrSpan(pages, DefaultConfig()); got != 3 {
			t.Errorf("ocrSpan = %d, want 3", got)
		}
	})

	t.Run("dense prefix disables OCR", func(t *testing.T) {
		pages := []PageRecord{
			{Number: 1, Text: dense, Mode: ModeNative},
			{Number: 2, Text: "", Mode: ModeNative},
			{Number: 3, Text: "", Mode: ModeNative},
		}
		if got := ocrSpan(pages, DefaultConfig()); got != 0 {
			t.Errorf("ocrSpan = %d, want 0", got)
		}
	})

	t.Run("span clamped to page count", func(t *testing.T) {
		pages := []PageRecord{{Number: 1, Text: "", Mode: ModeNative}}
		if got := ocrSpan(pages, DefaultConfig()); got != 1 {
			t.Errorf("ocrSpan = %d, want 1", got)
		}
	})

	t.Run("no pages", func(t *testing.T) {
		if got := ocrSpan(nil, DefaultConfig()); got != 0 {
			t.Errorf("ocrSpan = %d, want 0", got)
		}
	})
}

func TestAllEmpty(t *testing.T) {
	if !allEmpty([]PageRecord{{Text: "  \n\t"}, {Text: ""}}) {
		t.Error("expected whitespace-only pages to be empty")
	}
	if allEmpty([]PageRecord{{Text: ""}, {Text: "Contents"}}) {
		t.Error("expected non-empty page to be detected")
	}
}

func TestExtractionError(t *testing.T) {
	err := &ExtractionError{Path: "issue.pdf"}
	if !strings.Contains(err.Error(), "issue.pdf") {
		t.Errorf("error should name the document: %q", err.Error())
	}
}
