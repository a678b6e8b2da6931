package toc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Format selects the report representation.
type Format string

const (
	FormatText       Format = "text"
	FormatStructured Format = "structured"
)

// ParseFormat converts a CLI/flag value into a Format.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatText, FormatStructured:
		return Format(s), true
	}
	return "", false
}

// ErrInconsistent reports a ParseResult that violates the
// section-before-item ordering invariant. Reaching it indicates a parser
// defect, not an input-quality issue, so it is surfaced rather than
// recovered.
var ErrInconsistent = errors.New("item entry precedes its section heading")

// Editorial slots gated by the include-mail / include-contributors
// options, per brand. Matching is against the stored section name.
var (
	mailSlots = map[Brand][]string{
		BrandNewYorker: {"THE MAIL"},
		BrandAtlantic:  {"CORRESPONDENCE"},
		BrandHarpers:   {"LETTERS", "LETTER"},
	}
	contributorSlots = map[Brand][]string{
		BrandNewYorker: {"CONTRIBUTORS"},
	}
)

// Render converts a ParseResult into the chosen report format. It is a
// pure function of its inputs: identical inputs yield identical output.
func Render(res *ParseResult, format Format, opts Options) (string, error) {
	if err := checkOrder(res.Entries); err != nil {
		return "", err
	}

	entries := filterEntries(res.Brand, res.Entries, opts)

	switch format {
	case FormatStructured:
		return renderStructured(entries)
	default:
		return renderText(res.IssueTitle, entries), nil
	}
}

// checkOrder verifies that every item's section heading appears at or
// before it. Items under the implicit default (empty) section pass.
func checkOrder(entries []Entry) error {
	seen := make(map[string]bool)
	for _, e := range entries {
		switch e.Kind {
		case KindSection:
			seen[e.Section] = true
		case KindItem:
			if e.Section != "" && !seen[e.Section] {
				return fmt.Errorf("%w: %q", ErrInconsistent, e.Title)
			}
		}
	}
	return nil
}

// filterEntries applies the slot and suppress-empty filters. Filtering
// happens here, not in the parsers, so diagnostics keep true counts.
func filterEntries(brand Brand, entries []Entry, opts Options) []Entry {
	drop := make(map[string]bool)
	if !opts.IncludeMail {
		for _, s := range mailSlots[brand] {
			drop[s] = true
		}
	}
	if !opts.IncludeContributors {
		for _, s := range contributorSlots[brand] {
			drop[s] = true
		}
	}

	kept := make([]Entry, 0, len(entries))
	itemCount := make(map[string]int)
	for _, e := range entries {
		if drop[e.Section] {
			continue
		}
		kept = append(kept, e)
		if e.Kind == KindItem {
			itemCount[e.Section]++
		}
	}

	if !opts.SuppressEmpty {
		return kept
	}
	out := make([]Entry, 0, len(kept))
	for _, e := range kept {
		if e.Kind == KindSection && itemCount[e.Section] == 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}

// renderText emits the human-readable report: one heading line per
// section in encountered order, its items as bullets, blank line between
// sections.
func renderText(issueTitle string, entries []Entry) string {
	var lines []string
	if issueTitle != "" {
		lines = append(lines, issueTitle, "")
	}

	for _, e := range entries {
		switch e.Kind {
		case KindSection:
			if n := len(lines); n > 0 && lines[n-1] != "" {
				lines = append(lines, "")
			}
			if e.Page != nil {
				lines = append(lines, fmt.Sprintf("%s (p. %d)", e.Section, *e.Page))
			} else {
				lines = append(lines, e.Section)
			}
		case KindItem:
			b := "• " + e.Title
			if e.Page != nil {
				b += fmt.Sprintf(" (p. %d)", *e.Page)
			}
			if e.Author != "" {
				b += " — " + e.Author
			}
			lines = append(lines, b)
		}
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderStructured emits the ordered entry list as indented JSON for
// downstream automation.
func renderStructured(entries []Entry) (string, error) {
	if entries == nil {
		entries = []Entry{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
