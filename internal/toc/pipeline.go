package toc

import (
	"context"
	"strings"
)

// Pipeline wires extraction, brand detection and parsing for one
// document at a time. Documents are independent units of work; nothing
// is shared across Process calls.
type Pipeline struct {
	config    *Config
	extractor *Extractor
}

// NewPipeline creates a pipeline with the given config.
func NewPipeline(config *Config) *Pipeline {
	if config == nil {
		config = DefaultConfig()
	}
	return &Pipeline{
		config:    config,
		extractor: NewExtractor(config),
	}
}

// Process runs extract → detect → parse for a single PDF. An unresolved
// brand is not an error: it yields an empty ParseResult with Unresolved
// set so the caller can decide the exit policy. Extraction failure is
// fatal for this document only.
func (p *Pipeline) Process(ctx context.Context, path string, hint Brand, opts Options) (*ParseResult, error) {
	pages, err := p.extractor.Pages(ctx, path)
	if err != nil {
		return nil, err
	}

	brand := Detect(path, pages, hint)
	if brand == BrandUnknown {
		res := &ParseResult{
			Brand:      BrandUnknown,
			Unresolved: true,
			Modes:      make(map[int]ExtractionMode, len(pages)),
		}
		for _, pg := range pages {
			res.Modes[pg.Number] = pg.Mode
		}
		return res, nil
	}

	parser := ParserFor(brand)

	// Harper's columnar contents page tends to lose rows in one
	// extraction mode or the other, so both modes are parsed together;
	// duplicate suppression absorbs the rows present in both.
	if brand == BrandHarpers {
		if raw, err := p.extractor.RawPages(path, p.config.Pages); err == nil {
			pages = mergeModes(pages, raw)
		}
	}

	res := parser.Parse(pages, opts)

	// Layout extraction sometimes scrambles column order badly enough
	// that almost nothing matches; a raw-mode reparse can recover more.
	// Harper's already parses both modes merged.
	if brand != BrandHarpers && res.Items() < p.config.RawRetryMin {
		if raw, err := p.extractor.RawPages(path, p.config.Pages); err == nil {
			if retry := parser.Parse(raw, opts); retry.Items() > res.Items() {
				retry.Modes = res.Modes
				res = retry
			}
		}
	}

	return res, nil
}

// mergeModes appends each page's raw-mode text to its layout text,
// keeping the layout page set and modes.
func mergeModes(layout, raw []PageRecord) []PageRecord {
	byNum := make(map[int]string, len(raw))
	for _, pg := range raw {
		byNum[pg.Number] = pg.Text
	}
	out := make([]PageRecord, len(layout))
	copy(out, layout)
	for i := range out {
		if t := strings.TrimSpace(byNum[out[i].Number]); t != "" {
			out[i].Text = out[i].Text + "\n" + t
		}
	}
	return out
}

// Items counts the item entries in the result.
func (r *ParseResult) Items() int {
	n := 0
	for _, e := range r.Entries {
		if e.Kind == KindItem {
			n++
		}
	}
	return n
}
