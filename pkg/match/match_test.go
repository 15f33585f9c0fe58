package match

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var animals = []string{
	"cat", "Cow", "dog", "rat", "Raccoon", "pig",
	"tiger", "elephant", "ant", "horse", "Anteater", "giraffe",
}

func sorted(list []string) []string {
	out := append([]string(nil), list...)
	sort.Strings(out)
	return out
}

func TestFilterModes(t *testing.T) {
	testCases := []struct {
		text        string
		mode        Mode
		expected    []string
		description string
	}{
		{"an", Mode{AtStart: false, CaseSensitive: false}, []string{"elephant", "ant", "Anteater"}, "anywhere, any case"},
		{"an", Mode{AtStart: false, CaseSensitive: true}, []string{"elephant", "ant"}, "anywhere, exact case"},
		{"an", Mode{AtStart: true, CaseSensitive: false}, []string{"ant", "Anteater"}, "at start, any case"},
		{"an", Mode{AtStart: true, CaseSensitive: true}, []string{"ant"}, "at start, exact case"},
		{"Ra", Mode{AtStart: true, CaseSensitive: true}, []string{"Raccoon"}, "capitalised prefix"},
		{"ra", Mode{AtStart: true, CaseSensitive: true}, []string{"rat"}, "lowercase prefix"},
		{"ra", Mode{AtStart: true, CaseSensitive: false}, []string{"rat", "Raccoon"}, "prefix any case"},
		{"RAF", Mode{AtStart: false, CaseSensitive: false}, []string{"giraffe"}, "uppercase query"},
		{"zzz", Mode{}, []string{}, "nothing matches"},
		{"", Mode{AtStart: true, CaseSensitive: true}, animals, "empty text keeps everything"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, Filter(animals, tc.text, tc.mode))
		})
	}
}

func TestResolveSortsByteWise(t *testing.T) {
	res := Resolve(Filter(animals, "an", Mode{}), "an", false)

	require.Equal(t, KindMatches, res.Kind)
	assert.Equal(t, []string{"Anteater", "ant", "elephant"}, res.Matches)
	assert.Equal(t, "an", res.Text)
}

func TestResolveAddPrompt(t *testing.T) {
	res := Resolve(Filter(animals, "zzz", Mode{}), "zzz", true)

	require.Equal(t, KindAddPrompt, res.Kind)
	assert.Equal(t, "Add zzz", res.Label)
	assert.Equal(t, "zzz", res.Text)
	assert.Empty(t, res.Matches)
}

func TestResolveEmpty(t *testing.T) {
	res := Resolve(Filter(animals, "zzz", Mode{}), "zzz", false)
	assert.Equal(t, KindEmpty, res.Kind)
	assert.Equal(t, "empty", res.Kind.String())
}

func TestResolveDoesNotReorderInput(t *testing.T) {
	filtered := []string{"b", "a"}
	Resolve(filtered, "x", false)
	assert.Equal(t, []string{"b", "a"}, filtered)
}

func TestResolveKeepsDuplicates(t *testing.T) {
	res := Resolve(Filter([]string{"ant", "cat", "ant"}, "an", Mode{}), "an", false)
	assert.Equal(t, []string{"ant", "ant"}, res.Matches)
}

func TestStartMatchIsSubsetOfSubstringMatch(t *testing.T) {
	texts := []string{"", "a", "an", "An", "ra", "Ra", "e", "ti", "x", "Co", "o"}
	for _, cs := range []bool{true, false} {
		for _, text := range texts {
			start := Filter(animals, text, Mode{AtStart: true, CaseSensitive: cs})
			anywhere := Filter(animals, text, Mode{AtStart: false, CaseSensitive: cs})
			for _, c := range start {
				assert.Contains(t, anywhere, c, "text %q case sensitive %v", text, cs)
			}
		}
	}
}

func TestCaseInsensitiveIsSuperset(t *testing.T) {
	texts := []string{"a", "an", "An", "ra", "Ra", "CO", "co", "e"}
	for _, atStart := range []bool{true, false} {
		for _, text := range texts {
			exact := Filter(animals, text, Mode{AtStart: atStart, CaseSensitive: true})
			folded := Filter(animals, text, Mode{AtStart: atStart, CaseSensitive: false})
			for _, c := range exact {
				assert.Contains(t, folded, c, "text %q at start %v", text, atStart)
			}
			assert.GreaterOrEqual(t, len(folded), len(exact))
		}
	}
}

func TestResolveSortsFilteredMatches(t *testing.T) {
	for _, text := range []string{"a", "e", "r", "o"} {
		mode := Mode{}
		res := Resolve(Filter(animals, text, mode), text, false)
		assert.Equal(t, sorted(Filter(animals, text, mode)), res.Matches)
	}
}
