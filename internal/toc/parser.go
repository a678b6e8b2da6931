package toc

import (
	"strconv"
	"strings"
)

// Parser turns page text into an ordered ParseResult. One implementation
// per brand; each holds its own section vocabulary, pattern order and
// denylist. Options are accepted for contract symmetry; filtering happens
// at render time so diagnostics reflect true detection counts.
type Parser interface {
	Parse(pages []PageRecord, opts Options) *ParseResult
}

// ParserFor returns the parser for a brand, or nil for Unknown/Auto.
func ParserFor(brand Brand) Parser {
	switch brand {
	case BrandNewYorker:
		return NewNewYorkerParser()
	case BrandAtlantic:
		return NewAtlanticParser()
	case BrandHarpers:
		return NewHarpersParser()
	}
	return nil
}

// engine is the shared line classification + state machine behind all
// brand parsers. Brands differ only in their tables and a few hooks.
type engine struct {
	brand    Brand
	sections []string      // known section vocabulary, uppercase
	noise    []string      // brand denylist, checked before matching
	patterns []itemPattern // ordered, most anchored first

	// exclude rejects a would-be section name even when it starts with a
	// vocabulary word (e.g. Harper's Index bleeding into READINGS rows).
	exclude func(string) bool

	// contJoin enables the author-page-title continuation join, where a
	// wrapped subtitle on the following line is glued to the title.
	contJoin bool

	// poems enables quoted-title poem rows (one item per quoted title).
	poems bool

	// selectLines picks the physical lines to parse. Defaults to the
	// contents-to-footer region of all pages.
	selectLines func(pages []PageRecord) []string
}

// Parse runs the state machine over the selected lines.
func (e *engine) Parse(pages []PageRecord, _ Options) *ParseResult {
	res := &ParseResult{
		Brand: e.brand,
		Modes: make(map[int]ExtractionMode, len(pages)),
	}
	for _, p := range pages {
		res.Modes[p.Number] = p.Mode
	}
	res.IssueTitle = findIssueTitle(pages)

	selector := e.selectLines
	if selector == nil {
		selector = e.regionLines
	}
	lines := e.joinWrapped(nonEmpty(selector(pages)), res)

	section := ""
	seenHeading := make(map[string]bool)
	seenItem := make(map[string]bool)

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		upper := strings.ToUpper(line)

		if dateRe.MatchString(line) || e.isNoise(upper) {
			continue
		}

		if sec, pg, ok := e.trySection(line); ok {
			section = sec
			if !seenHeading[sec] {
				seenHeading[sec] = true
				res.Entries = append(res.Entries, Entry{Section: sec, Page: pg, Kind: KindSection})
			}
			continue
		}

		if e.poems && section == "POEMS" && strings.Contains(line, `"`) && hasDigitRe.MatchString(line) {
			if e.emitPoems(line, section, res, seenItem) {
				continue
			}
		}

		if section == "" || !e.matchItem(lines, &i, section, res, seenItem) {
			if isCandidate(line) {
				res.Unmatched++
			}
		}
	}

	return res
}

// matchItem runs the ordered pattern table over lines[*i]. Returns true
// when an item was emitted; advances *i when a continuation line was
// consumed.
func (e *engine) matchItem(lines []string, i *int, section string, res *ParseResult, seen map[string]bool) bool {
	line := strings.TrimSpace(lines[*i])

	for _, pat := range e.patterns {
		title, author, pageStr, ok := pat.groups(line)
		if !ok {
			continue
		}
		title = strings.TrimSpace(title)
		author = strings.TrimSpace(author)

		page, err := strconv.Atoi(pageStr)
		if err != nil || !validPage(page) || !hasLetterRe.MatchString(title) {
			continue
		}
		if pat.guardTitle && e.isKnownSection(strings.ToUpper(title)) {
			continue
		}

		if e.contJoin && pat.name == "author-page-title" && section != "POEMS" && *i+1 < len(lines) {
			next := strings.TrimSpace(lines[*i+1])
			if _, _, isSec := e.trySection(next); !isSec &&
				!trailingPageRe.MatchString(next) && len(next) >= 10 && len(next) <= 200 {
				title = title + " - " + next
				*i++
				res.Joined++
			}
		}

		key := strconv.Itoa(page) + "|" + strings.ToLower(title) + "|" + section
		if seen[key] {
			return true
		}
		seen[key] = true

		pg := page
		res.Entries = append(res.Entries, Entry{
			Section: section,
			Title:   title,
			Author:  author,
			Page:    &pg,
			Kind:    KindItem,
		})
		res.Matched++
		return true
	}

	return false
}

// emitPoems extracts quoted poem titles with optional author and page
// from a single line, e.g. `"Elegy" - Jane Doe (p. 44)`.
func (e *engine) emitPoems(line, section string, res *ParseResult, seen map[string]bool) bool {
	matches := poemRe.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return false
	}
	emitted := false
	for _, m := range matches {
		page, err := strconv.Atoi(m[3])
		if err != nil || !validPage(page) {
			continue
		}
		title := strings.TrimSpace(m[1])
		author := strings.TrimSpace(m[2])
		key := m[3] + "|" + strings.ToLower(title) + "|" + section
		if seen[key] {
			continue
		}
		seen[key] = true
		pg := page
		res.Entries = append(res.Entries, Entry{
			Section: section,
			Title:   title,
			Author:  author,
			Page:    &pg,
			Kind:    KindItem,
		})
		res.Matched++
		emitted = true
	}
	return emitted
}

// trySection recognizes a section heading in one of three shapes:
// "12 SECTION", "SECTION   12", or a bare vocabulary word.
func (e *engine) trySection(line string) (string, *int, bool) {
	upper := strings.ToUpper(strings.TrimSpace(line))

	if m := pageThenSectionRe.FindStringSubmatch(upper); m != nil {
		if e.isKnownSection(m[2]) {
			if n, err := strconv.Atoi(m[1]); err == nil && validPage(n) {
				return m[2], &n, true
			}
		}
	}
	if m := sectionThenPageRe.FindStringSubmatch(upper); m != nil {
		if e.isKnownSection(m[1]) {
			if n, err := strconv.Atoi(m[2]); err == nil && validPage(n) {
				return m[1], &n, true
			}
		}
	}
	if e.isBareHeading(upper) {
		return upper, nil, true
	}
	return "", nil, false
}

// bareHeadingTail caps how many characters may follow the vocabulary
// word on a bare heading line ("GOINGS ON ABOUT TOWN" fits).
const bareHeadingTail = 14

// isBareHeading reports whether a line with no page anchor is a heading
// on its own. Soft-wrap joining can fuse a heading with the line below
// it, so a digit or a long tail after the vocabulary word means a fused
// or noise line, not a heading.
func (e *engine) isBareHeading(upper string) bool {
	if e.exclude != nil && e.exclude(upper) {
		return false
	}
	if hasDigitRe.MatchString(upper) {
		return false
	}
	for _, s := range e.sections {
		if strings.HasPrefix(upper, s) && len(upper)-len(s) <= bareHeadingTail {
			return true
		}
	}
	return false
}

// isKnownSection reports whether a candidate starts with a vocabulary
// word for this brand, subject to the brand's exclude hook.
func (e *engine) isKnownSection(upper string) bool {
	upper = strings.TrimSpace(upper)
	if upper == "" {
		return false
	}
	if e.exclude != nil && e.exclude(upper) {
		return false
	}
	for _, s := range e.sections {
		if strings.HasPrefix(upper, s) {
			return true
		}
	}
	return false
}

func (e *engine) isNoise(upper string) bool {
	for _, n := range sharedNoise {
		if strings.Contains(upper, n) {
			return true
		}
	}
	for _, n := range e.noise {
		if strings.Contains(upper, n) {
			return true
		}
	}
	return false
}

// joinWrapped fuses a line that lacks a trailing page number with an
// immediately following page-number-only line (title-then-number wrap).
// Every fusion is counted so accidental joins stay observable.
func (e *engine) joinWrapped(lines []string, res *ParseResult) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if i+1 < len(lines) &&
			hasLetterRe.MatchString(line) &&
			!trailingPageRe.MatchString(line) &&
			pageNumberOnlyRe.MatchString(lines[i+1]) {
			line = strings.TrimRight(line, " ") + "  " + strings.TrimSpace(lines[i+1])
			res.Joined++
			i++
		}
		out = append(out, line)
	}
	return out
}

// regionLines is the default selector: the contents-to-footer region of
// all provided pages, cleaned and split into lines.
func (e *engine) regionLines(pages []PageRecord) []string {
	text := cleanText(concatPages(pages))
	low := strings.ToLower(text)

	start := 0
	for _, marker := range []string{"table of contents", "contents"} {
		if idx := strings.Index(low, marker); idx != -1 && (start == 0 || idx < start) {
			start = idx
		}
	}
	text = text[start:]

	var out []string
	for _, ln := range strings.Split(text, "\n") {
		if footerRe.MatchString(ln) {
			break
		}
		out = append(out, strings.TrimRight(ln, " \t"))
	}
	return out
}

// findIssueTitle scans the early lines for a masthead-plus-date line.
func findIssueTitle(pages []PageRecord) string {
	lines := strings.Split(cleanText(concatPages(pages)), "\n")
	if len(lines) > 120 {
		lines = lines[:120]
	}
	for _, ln := range lines {
		if issueTitleRe.MatchString(ln) {
			return strings.TrimSpace(ln)
		}
	}
	return ""
}

// isCandidate reports whether an unmatched line was plausibly an item
// row: it carries both letters and a page-number-looking digit run.
func isCandidate(line string) bool {
	return hasLetterRe.MatchString(line) && hasDigitRe.MatchString(line)
}

func nonEmpty(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		if strings.TrimSpace(ln) != "" {
			out = append(out, ln)
		}
	}
	return out
}
