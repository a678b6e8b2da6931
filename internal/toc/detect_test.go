package toc

import "testing"

func pageOne(text string) []PageRecord {
	return []PageRecord{{Number: 1, Text: text, Mode: ModeNative}}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		text     string
		hint     Brand
		expected Brand
	}{
		{
			name:     "explicit hint wins over filename",
			path:     "the_new_yorker_2025.pdf",
			hint:     BrandHarpers,
			expected: BrandHarpers,
		},
		{
			name:     "filename new yorker",
			path:     "The_New_Yorker_Jan_6.pdf",
			hint:     BrandAuto,
			expected: BrandNewYorker,
		},
		{
			name:     "filename atlantic",
			path:     "Atlantic-2025-03.pdf",
			hint:     BrandAuto,
			expected: BrandAtlantic,
		},
		{
			name:     "filename harpers",
			path:     "harpers_magazine_06.pdf",
			hint:     BrandAuto,
			expected: BrandHarpers,
		},
		{
			name:     "ambiguous filename falls through to content",
			path:     "newyorker_vs_atlantic.pdf",
			text:     "generic scanned noise",
			hint:     BrandAuto,
			expected: BrandUnknown,
		},
		{
			name:     "content masthead",
			path:     "issue.pdf",
			text:     "The New Yorker, January 6, 2025\nGOINGS ON ABOUT TOWN",
			hint:     BrandAuto,
			expected: BrandNewYorker,
		},
		{
			name:     "content harpers index",
			path:     "issue.pdf",
			text:     "HARPER’S MAGAZINE\nContents",
			hint:     BrandAuto,
			expected: BrandHarpers,
		},
		{
			name:     "ambiguous content",
			path:     "issue.pdf",
			text:     "the new yorker reviews the atlantic",
			hint:     BrandAuto,
			expected: BrandUnknown,
		},
		{
			name:     "no signal",
			path:     "issue42.pdf",
			text:     "some generic front matter without markers",
			hint:     BrandAuto,
			expected: BrandUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.path, pageOne(tt.text), tt.hint)
			if got != tt.expected {
				t.Errorf("Detect(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestParseBrand(t *testing.T) {
	if b, ok := ParseBrand("harpers"); !ok || b != BrandHarpers {
		t.Errorf("ParseBrand(harpers) = %q, %v", b, ok)
	}
	if _, ok := ParseBrand("time"); ok {
		t.Error("expected ParseBrand to reject unknown brand")
	}
}
