package location

import "testing"

func TestResolveExactName(t *testing.T) {
	r := NewResolver(40, "")

	m, ok := r.Resolve("Paris")
	if !ok {
		t.Fatalf("expected a match for Paris")
	}
	if m.City != "Paris" {
		t.Fatalf("expected Paris, got %s", m.City)
	}
	if m.Lat != 48.85 || m.Lon != 2.35 {
		t.Fatalf("unexpected coordinates: %v, %v", m.Lat, m.Lon)
	}
}

func TestResolveFuzzySpelling(t *testing.T) {
	r := NewResolver(40, "")

	// Misspellings within the threshold still resolve.
	cases := map[string]string{
		"warsav":   "Warsaw",
		"krakof":   "Krakow",
		"LONDON":   "London",
		"amsterdm": "Amsterdam",
	}

	for query, want := range cases {
		m, ok := r.Resolve(query)
		if !ok {
			t.Fatalf("expected %q to resolve", query)
		}
		if m.City != want {
			t.Fatalf("query %q: expected %s, got %s", query, want, m.City)
		}
	}
}

func TestResolveBelowThreshold(t *testing.T) {
	r := NewResolver(90, "")

	if _, ok := r.Resolve("warsav"); ok {
		t.Fatalf("expected no match below a 90 threshold")
	}
}

func TestResolveEmptyQuery(t *testing.T) {
	r := NewResolver(40, "")

	if _, ok := r.Resolve(""); ok {
		t.Fatalf("expected no match for empty input")
	}
	if _, ok := r.Resolve("   "); ok {
		t.Fatalf("expected no match for blank input")
	}
}

func TestSimilarityRatio(t *testing.T) {
	if got := similarity("abc", "abc"); got != 100 {
		t.Fatalf("identical strings should score 100, got %d", got)
	}
	if got := similarity("abc", "xyz"); got != 0 {
		t.Fatalf("disjoint strings should score 0, got %d", got)
	}
	// One edit over six runes: 5/6 of 100, integer-truncated.
	if got := similarity("warsaw", "warsav"); got != 83 {
		t.Fatalf("expected 83, got %d", got)
	}
}
