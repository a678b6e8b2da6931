package toc

import "testing"

func TestParseResultItems(t *testing.T) {
	res := &ParseResult{Entries: []Entry{
		{Section: "FICTION", Kind: KindSection},
		{Section: "FICTION", Title: "A", Kind: KindItem},
		{Section: "FICTION", Title: "B", Kind: KindItem},
	}}
	if got := res.Items(); got != 2 {
		t.Errorf("Items() = %d, want 2", got)
	}
	if got := (&ParseResult{}).Items(); got != 0 {
		t.Errorf("Items() on empty result = %d, want 0", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Pages != 16 {
		t.Errorf("Pages = %d, want 16", cfg.Pages)
	}
	if cfg.OCRFirst != 3 {
		t.Errorf("OCRFirst = %d, want 3", cfg.OCRFirst)
	}
	if cfg.SparseThreshold != 300 {
		t.Errorf("SparseThreshold = %d, want 300", cfg.SparseThreshold)
	}
}

func TestNewPipelineNilConfig(t *testing.T) {
	p := NewPipeline(nil)
	if p.config == nil || p.extractor == nil {
		t.Fatal("expected pipeline to fall back to defaults")
	}
}
