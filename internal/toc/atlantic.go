package toc

var atlanticSections = []string{
	"FEATURES", "DISPATCHES", "IDEAS", "CULTURE", "POLITICS", "SCIENCE",
	"TECHNOLOGY", "BUSINESS", "BOOKS", "REVIEW", "ESSAYS", "VOICES",
	"CORRESPONDENCE",
}

// AtlanticParser parses the Atlantic's contents layout: standard
// title/page tables under uppercase department headings.
type AtlanticParser struct {
	engine
}

func NewAtlanticParser() *AtlanticParser {
	return &AtlanticParser{engine{
		brand:    BrandAtlantic,
		sections: atlanticSections,
		patterns: defaultPatterns,
	}}
}
