package toc

import "regexp"

// leaders matches the run of filler characters between a title and its
// page number: dots, ellipses, middots, bullets, dashes, thin spaces.
const leaders = `[.\x{2026}\x{00B7}\x{2022}\x{2013}\x{2014}\x{2007}\x{2009}\-]+`

// itemPattern is one tolerant line pattern for a ToC item row. Patterns
// are tried in table order; the first match wins, so more-anchored
// patterns must precede permissive free-text ones. guardTitle rejects a
// match whose title is itself a known section name, which keeps the
// permissive patterns from swallowing headings.
type itemPattern struct {
	name       string
	re         *regexp.Regexp
	guardTitle bool
}

var (
	// Title …… Page — Author
	titleLeadersPageAuthor = itemPattern{
		name: "title-leaders-page-author",
		re:   regexp.MustCompile(`^\s*(?P<title>.+?)\s` + leaders + `\s(?P<page>\d{1,3})\s*-\s*(?P<author>.+?)\s*$`),
	}

	// Title — Author …… Page
	titleAuthorLeadersPage = itemPattern{
		name: "title-author-leaders-page",
		re:   regexp.MustCompile(`^\s*(?P<title>.+?)\s*-\s*(?P<author>.+?)\s` + leaders + `\s(?P<page>\d{1,3})\s*$`),
	}

	// Title, by Author …… Page
	titleByAuthorPage = itemPattern{
		name: "title-by-author-page",
		re:   regexp.MustCompile(`^\s*(?P<title>.+?),\s+by\s+(?P<author>.+?)(?:\s` + leaders + `)?\s+(?P<page>\d{1,3})\s*$`),
	}

	// Author  Title  Page (columnar)
	authorTitlePage = itemPattern{
		name:       "author-title-page",
		re:         regexp.MustCompile(`^\s*(?P<author>[A-Z][\w.'\-]+(?:\s+[A-Z][\w.'\-]+)*)\s{2,}(?P<title>.+?)\s{2,}(?P<page>\d{1,3})\s*$`),
		guardTitle: true,
	}

	// Author  Page  Title (New Yorker columnar layout)
	authorPageTitle = itemPattern{
		name: "author-page-title",
		re:   regexp.MustCompile(`^\s*(?P<author>[A-Z][\w.'\-]+(?:\s+[A-Z][\w.'\-]+)*)\s{2,}(?P<page>\d{1,3})\s{2,}(?P<title>.+?)\s*$`),
	}

	// Title …… Page
	titleLeadersPage = itemPattern{
		name:       "title-leaders-page",
		re:         regexp.MustCompile(`^\s*(?P<title>.+?)\s` + leaders + `\s(?P<page>\d{1,3})\s*$`),
		guardTitle: true,
	}

	// Title    Page (space-only leader)
	titleSpacesPage = itemPattern{
		name:       "title-spaces-page",
		re:         regexp.MustCompile(`^\s*(?P<title>.+?)\s{2,}(?P<page>\d{1,3})\s*$`),
		guardTitle: true,
	}

	// Page  Title
	pageTitle = itemPattern{
		name: "page-title",
		re:   regexp.MustCompile(`^\s*(?P<page>\d{1,3})\s+(?P<title>.+?)\s*$`),
	}

	// Title .. Page / Title Page (single-space trailing number)
	trailingDots = itemPattern{
		name:       "trailing-dots",
		re:         regexp.MustCompile(`^(?P<title>.+?)\s\.{2,}\s(?P<page>\d{1,3})\s*$`),
		guardTitle: true,
	}
	trailingNum = itemPattern{
		name:       "trailing-num",
		re:         regexp.MustCompile(`^(?P<title>.+?)\s(?P<page>\d{1,3})\s*$`),
		guardTitle: true,
	}
)

// defaultPatterns is the shared table order: anchored author/leader forms
// first, bare trailing-number forms last.
var defaultPatterns = []itemPattern{
	titleLeadersPageAuthor,
	titleAuthorLeadersPage,
	titleByAuthorPage,
	authorTitlePage,
	authorPageTitle,
	titleLeadersPage,
	titleSpacesPage,
	pageTitle,
	trailingDots,
	trailingNum,
}

var (
	// SECTION    12 (uppercase heading with a trailing page number)
	sectionThenPageRe = regexp.MustCompile(`^\s*(?P<section>[A-Z][A-Z '&/.\-]+?)\s{2,}(?P<page>\d{1,3})\s*$`)

	// 12 SECTION (page-first heading)
	pageThenSectionRe = regexp.MustCompile(`^\s*(?P<page>\d{1,3})\s+(?P<section>.+?)\s*$`)

	// A line that is exactly a page-number token; join target.
	pageNumberOnlyRe = regexp.MustCompile(`^\s*\d{1,3}\s*$`)

	// A line already anchored by a trailing page number.
	trailingPageRe = regexp.MustCompile(`\d{1,3}\s*$`)

	// Running footers and date lines are never ToC rows.
	footerRe = regexp.MustCompile(`(?i)(the new yorker|the atlantic|harper'?s magazine).*,\s+\w+\s+\d{1,2},\s+\d{4}`)
	dateRe   = regexp.MustCompile(`(?i)\b(?:JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)\b\.?,?\s+\d{1,2},\s+\d{4}`)

	// Issue masthead line, e.g. "The New Yorker, January 6, 2025".
	issueTitleRe = regexp.MustCompile(`(?i)(The New Yorker|The Atlantic|Harper'?s Magazine).+\d{4}`)

	hasLetterRe = regexp.MustCompile(`[a-zA-Z]`)
	hasDigitRe  = regexp.MustCompile(`\d`)

	smallNumberRe = regexp.MustCompile(`\b\d{1,3}\b`)

	// Quoted poem rows: `"Title" - Author (p. 44)`, possibly several per line.
	poemRe = regexp.MustCompile(`("[^"]+")\s*(?:-\s*)?([^0-9"]*?)\s*(?:\(p\.\s*)?(\d{1,3})\)?`)
)

// sharedNoise lists markers that bleed into ToC regions across brands.
var sharedNoise = []string{
	"PRICE $",
	"ILLUSTRATIONS BY",
	"SUBSCRIBE",
	"LOVE BOOKS, LOVE FOLIO",
}

// validPage bounds acceptable magazine page numbers.
func validPage(n int) bool {
	return n >= 1 && n <= 999
}

// groups extracts the named captures of a pattern match.
func (p itemPattern) groups(line string) (title, author, page string, ok bool) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return "", "", "", false
	}
	for i, name := range p.re.SubexpNames() {
		switch name {
		case "title":
			title = m[i]
		case "author":
			author = m[i]
		case "page":
			page = m[i]
		}
	}
	return title, author, page, true
}
