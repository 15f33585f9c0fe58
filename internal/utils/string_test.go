package utils

import "testing"

func TestEqualLower(t *testing.T) {
	testCases := []struct {
		a, b        rune
		expected    bool
		description string
	}{
		{'a', 'a', true, "identical"},
		{'A', 'a', true, "ASCII upper vs lower"},
		{'z', 'Z', true, "ASCII lower vs upper"},
		{'a', 'b', false, "different letters"},
		{'1', '1', true, "digits"},
		{'É', 'é', true, "non-ASCII fold"},
		{'[', '{', false, "brackets are not letters"},
		{'\u0130', 'i', true, "dotted capital I lowercases to i"},
		{'\u212A', 'k', true, "Kelvin sign lowercases to k"},
		{'\u017F', 's', false, "long s has no lowercase mapping to s"},
	}

	for _, tc := range testCases {
		if got := EqualLower(tc.a, tc.b); got != tc.expected {
			t.Errorf("%s: EqualLower(%q, %q) = %v, want %v", tc.description, tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestIndexFold(t *testing.T) {
	testCases := []struct {
		s, substr   string
		start, end  int
		description string
	}{
		{"Anteater", "an", 0, 2, "match at start with different case"},
		{"elephant", "AN", 5, 7, "match in the middle"},
		{"banana", "an", 1, 3, "first occurrence only"},
		{"cat", "dog", -1, -1, "no match"},
		{"cat", "", 0, 0, "empty substring"},
		{"ca", "cat", -1, -1, "substring longer than string"},
		{"Éclair", "éc", 0, 3, "multi-byte rune"},
		{"\u0130stanbul", "is", 0, 3, "dotted capital I matches like strings.ToLower"},
	}

	for _, tc := range testCases {
		start, end := IndexFold(tc.s, tc.substr)
		if start != tc.start || end != tc.end {
			t.Errorf("%s: IndexFold(%q, %q) = (%d, %d), want (%d, %d)",
				tc.description, tc.s, tc.substr, start, end, tc.start, tc.end)
		}
	}
}

func TestIgnoreCaseHelpers(t *testing.T) {
	if !HasPrefixIgnoreCase("Raccoon", "ra") {
		t.Error("expected Raccoon to have prefix ra ignoring case")
	}
	if HasPrefixIgnoreCase("cat", "at") {
		t.Error("cat does not start with at")
	}
	if !StringContainsIgnoreCase("elephant", "AN") {
		t.Error("expected elephant to contain AN ignoring case")
	}
}
