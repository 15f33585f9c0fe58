package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EqualLower reports whether a and b are equal once lowercased.
// It uses the same per-rune mapping as strings.ToLower, so it agrees with
// StringContainsIgnoreCase and HasPrefixIgnoreCase.
func EqualLower(a, b rune) bool {
	if a == b {
		return true
	}

	// ASCII first
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		return a == b
	}

	return unicode.ToLower(a) == unicode.ToLower(b)
}

// StringContainsIgnoreCase checks if string contains substring case-insensitively
func StringContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// HasPrefixIgnoreCase checks if string has prefix case-insensitively
func HasPrefixIgnoreCase(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

// IndexFold returns the byte range of the first case-insensitive occurrence
// of substr in s, or (-1, -1) when there is none.
// The range is in s's own bytes, so it is safe to slice s with it even when
// the folded forms differ in length.
func IndexFold(s, substr string) (int, int) {
	if substr == "" {
		return 0, 0
	}
	for start := 0; start < len(s); {
		if end, ok := matchFoldAt(s, start, substr); ok {
			return start, end
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		start += size
	}
	return -1, -1
}

// matchFoldAt reports whether substr matches s at byte offset start and
// returns the end offset of the match in s.
func matchFoldAt(s string, start int, substr string) (int, bool) {
	i := start
	for _, want := range substr {
		if i >= len(s) {
			return 0, false
		}
		got, size := utf8.DecodeRuneInString(s[i:])
		if !EqualLower(got, want) {
			return 0, false
		}
		i += size
	}
	return i, true
}
