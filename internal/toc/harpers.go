package toc

import (
	"regexp"
	"strings"
)

var harpersSections = []string{
	"READINGS", "ESSAY", "REPORT", "NOTEBOOK", "LETTER", "LETTERS",
	"REVIEWS", "REVIEW", "POEM", "POETRY", "FICTION", "ART",
	"ARTS & LETTERS", "ANNOTATIONS", "DEPARTMENTS",
}

var harpersNoise = []string{
	"HARPER'S INDEX",
	"HARPERS INDEX",
	"FINDINGS",
}

// harpersEndRe marks where the Harper's Index or Findings pages begin,
// including OCR renditions with letter-spaced capitals. Everything after
// it superficially resembles ToC rows and must be cut off.
var harpersEndRe = regexp.MustCompile(
	`(?i)(HARPER'?S\s+INDEX|FINDINGS|H\s*A\s*R\s*P\s*E\s*R\s*'?\s*S\s*I\s*N\s*D\s*E\s*X|F\s*I\s*N\s*D\s*I\s*N\s*G\s*S)`)

// harpersFallbackPage is used when no contents page can be located.
const harpersFallbackPage = 3

// HarpersParser parses Harper's Magazine. Its contents page floats among
// the first several pages and the Harper's Index column bleeds into
// generic patterns, so parsing is restricted to the located ToC page and
// the one after it.
type HarpersParser struct {
	engine
}

func NewHarpersParser() *HarpersParser {
	p := &HarpersParser{}
	p.engine = engine{
		brand:    BrandHarpers,
		sections: harpersSections,
		noise:    harpersNoise,
		patterns: defaultPatterns,
		exclude:  harpersExclude,
	}
	p.engine.selectLines = p.tocLines
	return p
}

// harpersExclude keeps index/findings headings out of the vocabulary
// even though they start with letters shared by real sections.
func harpersExclude(upper string) bool {
	if strings.Contains(upper, "HARPER") && strings.Contains(upper, "INDEX") {
		return true
	}
	return strings.ReplaceAll(upper, " ", "") == "FINDINGS"
}

// tocLines selects the located ToC page plus the following page, cut off
// at the index marker. No region slicing: the page restriction already
// bounds the text.
func (p *HarpersParser) tocLines(pages []PageRecord) []string {
	start := findHarpersTocPage(pages)

	var b strings.Builder
	for _, pg := range pages {
		if pg.Number == start || pg.Number == start+1 {
			b.WriteString(pg.Text)
			b.WriteString("\n")
		}
	}

	region := cleanText(b.String())
	if m := harpersEndRe.FindStringIndex(region); m != nil {
		region = region[:m[0]]
	}
	return strings.Split(region, "\n")
}

// findHarpersTocPage scans the early pages for one that mentions the
// contents, carries enough page-number tokens to be a table, and is not
// the Harper's Index page. Falls back to page 3.
func findHarpersTocPage(pages []PageRecord) int {
	for _, pg := range pages {
		if pg.Number > 7 {
			break
		}
		low := strings.ToLower(pg.Text)
		if !strings.Contains(low, "contents") {
			continue
		}
		if harpersEndRe.MatchString(pg.Text) {
			continue
		}
		if len(smallNumberRe.FindAllString(pg.Text, -1)) >= 6 {
			return pg.Number
		}
	}
	return harpersFallbackPage
}
