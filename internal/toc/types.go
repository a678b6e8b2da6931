package toc

import "encoding/json"

// Brand identifies the editorial layout of a magazine PDF.
type Brand string

const (
	BrandAuto      Brand = "auto"
	BrandNewYorker Brand = "newyorker"
	BrandAtlantic  Brand = "atlantic"
	BrandHarpers   Brand = "harpers"
	BrandUnknown   Brand = "unknown"
)

// ParseBrand converts a CLI/flag value into a Brand.
// Unrecognized values are reported so bad flags fail fast.
func ParseBrand(s string) (Brand, bool) {
	switch Brand(s) {
	case BrandAuto, BrandNewYorker, BrandAtlantic, BrandHarpers:
		return Brand(s), true
	}
	return BrandUnknown, false
}

// ExtractionMode records how a page's text was obtained.
type ExtractionMode string

const (
	ModeNative ExtractionMode = "native"
	ModeOCR    ExtractionMode = "ocr"
)

// PageRecord is the extracted text of a single page.
type PageRecord struct {
	Number int            // 1-based physical page number
	Text   string         // extracted text, layout preserved when native
	Mode   ExtractionMode // which extraction mode served this page
}

// EntryKind distinguishes section headings from item rows.
type EntryKind string

const (
	KindSection EntryKind = "section"
	KindItem    EntryKind = "item"
)

// Entry is one row of the extracted table of contents. Items carry the
// section they appeared under; headings carry the section name itself.
type Entry struct {
	Section string    `json:"section"`
	Title   string    `json:"title,omitempty"`
	Author  string    `json:"author,omitempty"`
	Page    *int      `json:"page,omitempty"`
	Kind    EntryKind `json:"kind"`
}

// ParseResult is the ordered entry sequence plus per-document diagnostics.
// Entry order mirrors source page order; every item appears at or after
// the heading it is attached to.
type ParseResult struct {
	Brand      Brand
	IssueTitle string
	Entries    []Entry

	// Diagnostics. Matched/Unmatched count item candidate lines; Joined
	// counts title/page-number line fusions. Modes maps physical page
	// number to the extraction mode that produced its text.
	Matched    int
	Unmatched  int
	Joined     int
	Modes      map[int]ExtractionMode
	Unresolved bool // brand could not be uniquely classified
}

// Options carries the parse/render toggles recognized by all brands.
type Options struct {
	IncludeMail         bool
	IncludeContributors bool
	SuppressEmpty       bool
}

// Config holds tunables for extraction and parsing.
type Config struct {
	// Pages is how many leading pages are scanned for ToC content.
	Pages int

	// OCRFirst bounds which pages are eligible for OCR fallback.
	OCRFirst int

	// SparseThreshold is the minimum count of alphanumeric characters in
	// the OCR-eligible pages below which native text is considered sparse.
	SparseThreshold int

	// RasterDPI is the pdftoppm resolution used for OCR rasterization.
	RasterDPI int

	// RawRetryMin triggers a raw-mode reparse when a non-Harper's parse
	// yields fewer items than this.
	RawRetryMin int
}

// DefaultConfig returns a Config with the tuned defaults.
func DefaultConfig() *Config {
	return &Config{
		Pages:           16,
		OCRFirst:        3,
		SparseThreshold: 300,
		RasterDPI:       300,
		RawRetryMin:     4,
	}
}

// String returns an indented JSON representation for debugging.
func (r *ParseResult) String() string {
	b, _ := json.MarshalIndent(r.Entries, "", "  ")
	return string(b)
}
