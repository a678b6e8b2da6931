package toc

import (
	"regexp"
	"strings"
)

var (
	hyphenBreakRe = regexp.MustCompile(`-\n([a-z])`)
	softWrapRe    = regexp.MustCompile(`([^.:;\n])\n([a-z])`)

	punctFolder = strings.NewReplacer(
		"—", "-", // em dash
		"–", "-", // en dash
		"’", "'",
		"‘", "'",
		"“", `"`,
		"”", `"`,
		" ", " ", // nbsp
	)
)

// dehyphenate rejoins words split across line breaks and unwraps soft
// wraps that continue onto a lowercase line. Applied before any pattern
// matching so wrapped ToC rows read as single logical lines.
func dehyphenate(text string) string {
	text = hyphenBreakRe.ReplaceAllString(text, "$1")
	// The wrap pattern consumes the character before the newline, so
	// back-to-back wraps need another pass. Each pass removes a newline.
	for {
		joined := softWrapRe.ReplaceAllString(text, "$1 $2")
		if joined == text {
			return joined
		}
		text = joined
	}
}

// normalize folds typographic punctuation to ASCII equivalents so the
// pattern tables only need to know one spelling.
func normalize(text string) string {
	return punctFolder.Replace(text)
}

// cleanText is the full normalization applied to extracted page text.
func cleanText(text string) string {
	return normalize(dehyphenate(text))
}
