package toc

import "testing"

func parseOne(t *testing.T, p Parser, text string) *ParseResult {
	t.Helper()
	return p.Parse([]PageRecord{{Number: 1, Text: text, Mode: ModeNative}}, Options{})
}

func TestNewYorkerSectionAndByline(t *testing.T) {
	text := "PERSONAL HISTORY    20\n" +
		"Transitions, by James Marcus ... 20\n"

	res := parseOne(t, NewNewYorkerParser(), text)

	if len(res.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %s", len(res.Entries), res)
	}

	sec := res.Entries[0]
	if sec.Kind != KindSection || sec.Section != "PERSONAL HISTORY" {
		t.Errorf("unexpected section entry: %+v", sec)
	}
	if sec.Page == nil || *sec.Page != 20 {
		t.Errorf("expected section page 20, got %v", sec.Page)
	}

	item := res.Entries[1]
	if item.Kind != KindItem || item.Section != "PERSONAL HISTORY" {
		t.Errorf("unexpected item entry: %+v", item)
	}
	if item.Title != "Transitions" || item.Author != "James Marcus" {
		t.Errorf("got title %q author %q", item.Title, item.Author)
	}
	if item.Page == nil || *item.Page != 20 {
		t.Errorf("expected item page 20, got %v", item.Page)
	}
	if res.Matched != 1 {
		t.Errorf("expected 1 matched line, got %d", res.Matched)
	}
}

func TestNewYorkerColumnarWithContinuation(t *testing.T) {
	text := "A REPORTER AT LARGE\n" +
		"JANE DOE   34   The Long Way Home\n" +
		"A journey through the mountain passes\n"

	res := parseOne(t, NewNewYorkerParser(), text)

	if got := res.Items(); got != 1 {
		t.Fatalf("expected 1 item, got %d: %s", got, res)
	}
	item := res.Entries[1]
	if item.Author != "JANE DOE" {
		t.Errorf("expected author JANE DOE, got %q", item.Author)
	}
	want := "The Long Way Home - A journey through the mountain passes"
	if item.Title != want {
		t.Errorf("expected joined title %q, got %q", want, item.Title)
	}
	if item.Page == nil || *item.Page != 34 {
		t.Errorf("expected page 34, got %v", item.Page)
	}
	if res.Joined != 1 {
		t.Errorf("expected continuation join recorded, got %d", res.Joined)
	}
}

func TestNewYorkerPoems(t *testing.T) {
	text := "POEMS\n" +
		"“Elegy” — Mary Oliver (p. 44)  “Crossing” — Ocean Vuong (p. 61)\n"

	res := parseOne(t, NewNewYorkerParser(), text)

	if got := res.Items(); got != 2 {
		t.Fatalf("expected 2 poem items, got %d: %s", got, res)
	}
	first := res.Entries[1]
	if first.Title != `"Elegy"` || first.Author != "Mary Oliver" {
		t.Errorf("got title %q author %q", first.Title, first.Author)
	}
	if first.Page == nil || *first.Page != 44 {
		t.Errorf("expected page 44, got %v", first.Page)
	}
	second := res.Entries[2]
	if second.Title != `"Crossing"` || second.Page == nil || *second.Page != 61 {
		t.Errorf("unexpected second poem: %+v", second)
	}
}

func TestNewYorkerPageFirstSectionHeading(t *testing.T) {
	text := "15 THE TALK OF THE TOWN\n" +
		"Comment on the news ..... 15\n"

	res := parseOne(t, NewNewYorkerParser(), text)

	if len(res.Entries) == 0 || res.Entries[0].Kind != KindSection {
		t.Fatalf("expected leading section entry, got %s", res)
	}
	sec := res.Entries[0]
	if sec.Section != "THE TALK OF THE TOWN" || sec.Page == nil || *sec.Page != 15 {
		t.Errorf("unexpected section: %+v", sec)
	}
	if res.Items() != 1 {
		t.Errorf("expected 1 item, got %d", res.Items())
	}
}

func TestNewYorkerNoiseLinesSkipped(t *testing.T) {
	text := "FICTION\n" +
		"PRICE $8.99 WINTER PREVIEW 12\n" +
		"The Visit ..... 58\n"

	res := parseOne(t, NewNewYorkerParser(), text)

	if res.Items() != 1 {
		t.Fatalf("expected noise line dropped, got %d items: %s", res.Items(), res)
	}
	if res.Entries[1].Title != "The Visit" {
		t.Errorf("unexpected item %+v", res.Entries[1])
	}
	// Noise is denylisted before candidate counting, not counted unmatched.
	if res.Unmatched != 0 {
		t.Errorf("expected 0 unmatched, got %d", res.Unmatched)
	}
}
