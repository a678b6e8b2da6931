package toc

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// ExtractionError reports that no extraction mode produced any text for
// the required pages of a document. Fatal for that document only.
type ExtractionError struct {
	Path string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("no text extracted from %s", e.Path)
}

// Extractor obtains page text from a PDF, preferring the native text
// layer and falling back to OCR when the early pages look sparse.
type Extractor struct {
	config *Config
}

// NewExtractor creates an extractor with the given config.
func NewExtractor(config *Config) *Extractor {
	if config == nil {
		config = DefaultConfig()
	}
	return &Extractor{config: config}
}

// Pages extracts text for pages 1..config.Pages of the PDF.
// Layout-mode pdftotext is tried first; if it yields nothing at all, the
// native PDF text layer is read directly. Pages 1..config.OCRFirst are
// re-extracted via OCR when the combined native text is too sparse.
func (e *Extractor) Pages(ctx context.Context, path string) ([]PageRecord, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not found: install poppler-utils")
	}

	limit := e.pageLimit(path)

	pages := make([]PageRecord, 0, limit)
	for p := 1; p <= limit; p++ {
		text, err := e.extractPage(ctx, path, p)
		if err != nil {
			text = ""
		}
		pages = append(pages, PageRecord{Number: p, Text: text, Mode: ModeNative})
	}

	if allEmpty(pages) {
		raw, err := e.RawPages(path, limit)
		if err == nil && !allEmpty(raw) {
			pages = raw
		}
	}

	if span := ocrSpan(pages, e.config); span > 0 {
		if texts, err := e.ocrPages(ctx, path, span); err == nil {
			for i := 0; i < span && i < len(texts); i++ {
				if texts[i] == "" {
					continue
				}
				pages[i].Text = texts[i]
				pages[i].Mode = ModeOCR
			}
		}
	}

	if allEmpty(pages) {
		return nil, &ExtractionError{Path: path}
	}

	return pages, nil
}

// RawPages reads the native text layer directly, without layout
// reconstruction. Used as the fallback extraction mode and for the
// raw-mode reparse retry.
func (e *Extractor) RawPages(path string, limit int) ([]PageRecord, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	n := reader.NumPage()
	if limit > n {
		limit = n
	}

	pages := make([]PageRecord, 0, limit)
	for p := 1; p <= limit; p++ {
		page := reader.Page(p)
		text := ""
		if !page.V.IsNull() {
			if t, err := page.GetPlainText(nil); err == nil {
				text = t
			}
		}
		pages = append(pages, PageRecord{Number: p, Text: text, Mode: ModeNative})
	}

	return pages, nil
}

// pageLimit caps the scan window at the document's actual page count.
func (e *Extractor) pageLimit(path string) int {
	limit := e.config.Pages
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return limit
	}
	defer f.Close()
	if n := reader.NumPage(); n > 0 && n < limit {
		return n
	}
	return limit
}

// extractPage runs pdftotext in layout mode for a single page.
func (e *Extractor) extractPage(ctx context.Context, path string, page int) (string, error) {
	cmd := exec.CommandContext(ctx, "pdftotext", "-layout",
		"-f", strconv.Itoa(page), "-l", strconv.Itoa(page), path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext page %d: %w", page, err)
	}
	return string(out), nil
}

// ocrPages rasterizes pages 1..n at RasterDPI and runs tesseract on each
// image. Returns one text per page, empty where recognition failed.
// Missing OCR binaries are not an error; the caller keeps native text.
func (e *Extractor) ocrPages(ctx context.Context, path string, n int) ([]string, error) {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		return nil, err
	}
	if _, err := exec.LookPath("tesseract"); err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "magtoc-ocr-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	prefix := filepath.Join(dir, "pg")
	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-f", "1", "-l", strconv.Itoa(n),
		"-r", strconv.Itoa(e.config.RasterDPI), path, prefix)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w", err)
	}

	images, err := filepath.Glob(prefix + "*.ppm")
	if err != nil {
		return nil, err
	}
	sort.Strings(images)

	texts := make([]string, 0, len(images))
	for _, img := range images {
		base := strings.TrimSuffix(img, filepath.Ext(img))
		run := exec.CommandContext(ctx, "tesseract", img, base)
		if err := run.Run(); err != nil {
			texts = append(texts, "")
			continue
		}
		data, err := os.ReadFile(base + ".txt")
		if err != nil {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, string(data))
	}

	return texts, nil
}

// ocrSpan decides how many leading pages get re-extracted via OCR:
// all OCR-eligible pages when their combined native text is sparse,
// none otherwise. Pages beyond OCRFirst are never OCR'd.
func ocrSpan(pages []PageRecord, config *Config) int {
	n := config.OCRFirst
	if n > len(pages) {
		n = len(pages)
	}
	if n <= 0 || !looksSparse(concatPages(pages[:n]), config.SparseThreshold) {
		return 0
	}
	return n
}

var nonAlnumRe = regexp.MustCompile(`[\W_]+`)

// looksSparse reports whether text is too thin to be a reliable native
// extraction: fewer than threshold alphanumeric characters remain after
// stripping whitespace, punctuation and control noise.
func looksSparse(text string, threshold int) bool {
	core := nonAlnumRe.ReplaceAllString(text, "")
	return len(core) < threshold
}

func allEmpty(pages []PageRecord) bool {
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			return false
		}
	}
	return true
}

func concatPages(pages []PageRecord) string {
	var b strings.Builder
	for _, p := range pages {
		b.WriteString(p.Text)
	}
	return b.String()
}
