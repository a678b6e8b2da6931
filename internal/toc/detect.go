package toc

import (
	"path/filepath"
	"strings"
)

// Filename tokens and page-text markers characteristic of each brand.
// Detection requires a unique match; two brands matching the same signal
// resolves to Unknown rather than a guess.
var (
	filenameTokens = map[Brand][]string{
		BrandNewYorker: {"new yorker", "new_yorker", "newyorker"},
		BrandAtlantic:  {"atlantic"},
		BrandHarpers:   {"harper"},
	}

	contentMarkers = map[Brand][]string{
		BrandNewYorker: {"the new yorker", "goings on about town", "the talk of the town"},
		BrandAtlantic:  {"the atlantic", "dispatches"},
		BrandHarpers:   {"harper's magazine", "harpers magazine", "harper's index"},
	}
)

// Detect classifies a document into a Brand using an explicit priority
// chain: explicit hint, then filename tokens, then early-page markers.
// No signal, or an ambiguous one, yields Unknown.
func Detect(path string, pages []PageRecord, hint Brand) Brand {
	if hint != BrandAuto && hint != "" {
		return hint
	}

	name := strings.ToLower(filepath.Base(path))
	if b, ok := uniqueMatch(name, filenameTokens); ok {
		return b
	}

	// Only the first page carries masthead signal worth trusting.
	var text string
	if len(pages) > 0 {
		text = strings.ToLower(normalize(pages[0].Text))
	}
	if b, ok := uniqueMatch(text, contentMarkers); ok {
		return b
	}

	return BrandUnknown
}

// uniqueMatch returns the single brand whose tokens appear in s, or
// false when zero or more than one brand matches.
func uniqueMatch(s string, tokens map[Brand][]string) (Brand, bool) {
	if s == "" {
		return BrandUnknown, false
	}
	found := BrandUnknown
	count := 0
	for _, b := range []Brand{BrandNewYorker, BrandAtlantic, BrandHarpers} {
		for _, tok := range tokens[b] {
			if strings.Contains(s, tok) {
				found = b
				count++
				break
			}
		}
	}
	if count == 1 {
		return found, true
	}
	return BrandUnknown, false
}
