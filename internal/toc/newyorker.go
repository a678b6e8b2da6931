package toc

// newYorkerSections is the section vocabulary of the New Yorker front
// matter. Matching is prefix-based on the uppercased line.
var newYorkerSections = []string{
	"THE TALK OF THE TOWN", "PERSONAL HISTORY", "TAKES", "SHOUTS & MURMURS",
	"ANNALS OF ARTIFICIAL INTELLIGENCE", "A REPORTER AT LARGE", "PROFILES",
	"FICTION", "THE CRITICS", "BOOKS", "THE CURRENT CINEMA", "THE THEATRE",
	"POEMS", "GOINGS ON", "COVER", "CONTRIBUTORS", "TABLES FOR TWO",
	"MUSICAL EVENTS", "ON AND OFF THE MENU", "THE MAIL",
}

var newYorkerNoise = []string{
	"WINTER PREVIEW",
	"THE WEEKEND ESSAY",
	"THE NEW YORKER,",
}

// NewYorkerParser parses the New Yorker's columnar contents layout,
// where items usually read author, page, then title, with wrapped
// subtitles continued on the next physical line.
type NewYorkerParser struct {
	engine
}

func NewNewYorkerParser() *NewYorkerParser {
	return &NewYorkerParser{engine{
		brand:    BrandNewYorker,
		sections: newYorkerSections,
		noise:    newYorkerNoise,
		patterns: defaultPatterns,
		contJoin: true,
		poems:    true,
	}}
}
