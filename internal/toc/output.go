package toc

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for document names
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for degraded-but-continuing states
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// errorStyle for failures
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// FormatDiagnostics writes the per-document diagnostics channel: brand,
// extraction mode per page, and candidate-line counters. This never goes
// into the report payload.
func FormatDiagnostics(w io.Writer, path string, res *ParseResult) {
	fmt.Fprintf(w, "%s %s\n", dimStyle.Render("Document:"), titleStyle.Render(path))

	if res.Unresolved {
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render("Brand:"), warnStyle.Render("unresolved"))
	} else {
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render("Brand:"), successStyle.Render(string(res.Brand)))
	}

	if len(res.Modes) > 0 {
		pages := make([]int, 0, len(res.Modes))
		for p := range res.Modes {
			pages = append(pages, p)
		}
		sort.Ints(pages)
		for _, p := range pages {
			mode := string(res.Modes[p])
			if res.Modes[p] == ModeOCR {
				mode = warnStyle.Render(mode)
			} else {
				mode = dimStyle.Render(mode)
			}
			fmt.Fprintf(w, "%s page %d: %s\n", dimStyle.Render("Mode:"), p, mode)
		}
	}

	fmt.Fprintf(w, "%s %d matched, %d unmatched, %d joined\n",
		dimStyle.Render("Lines:"), res.Matched, res.Unmatched, res.Joined)
}

// FormatError writes a per-document failure to the diagnostics channel.
func FormatError(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "%s %s: %v\n", errorStyle.Render("ERROR"), path, err)
}
