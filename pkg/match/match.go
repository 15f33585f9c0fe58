/*
Package match filters a candidate list against the text typed into a field.

Four modes exist, picked by Mode.AtStart and Mode.CaseSensitive:

	AtStart  CaseSensitive  candidate is kept when
	true     true           it starts with the text
	true     false          its lowercase form starts with the lowercase text
	false    true           it contains the text
	false    false          its lowercase form contains the lowercase text

Filter keeps candidate order and applies no limit. Resolve turns a filter
result into a Result: sorted matches, an "Add <text>" prompt, or nothing.
Sorting is byte-wise ascending regardless of mode, so "Anteater" sorts
before "ant".
*/
package match

import (
	"sort"
	"strings"

	"github.com/bastiangx/acfield/internal/utils"
)

// AddPrefix starts the label of the add-prompt row.
const AddPrefix = "Add "

// Mode selects the filtering predicate.
type Mode struct {
	AtStart       bool
	CaseSensitive bool
}

// Matches reports whether candidate is kept for text under m.
func (m Mode) Matches(candidate, text string) bool {
	switch {
	case m.AtStart && m.CaseSensitive:
		return strings.HasPrefix(candidate, text)
	case m.AtStart:
		return utils.HasPrefixIgnoreCase(candidate, text)
	case m.CaseSensitive:
		return strings.Contains(candidate, text)
	default:
		return utils.StringContainsIgnoreCase(candidate, text)
	}
}

// Filter returns the candidates kept for text, in their original order.
// Empty text keeps everything.
func Filter(candidates []string, text string, mode Mode) []string {
	kept := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if mode.Matches(c, text) {
			kept = append(kept, c)
		}
	}
	return kept
}

// Kind tells which shape a Result has.
type Kind int

const (
	KindEmpty Kind = iota
	KindMatches
	KindAddPrompt
)

func (k Kind) String() string {
	switch k {
	case KindMatches:
		return "matches"
	case KindAddPrompt:
		return "add-prompt"
	default:
		return "empty"
	}
}

// Result is the outcome of matching typed text.
type Result struct {
	Kind    Kind
	Matches []string // sorted ascending; set for KindMatches
	Label   string   // set for KindAddPrompt
	Text    string   // the typed text the result was computed for
}

// Resolve sorts a filtered list into a Result. An empty list becomes an
// add prompt when addOption is set, KindEmpty otherwise.
func Resolve(filtered []string, text string, addOption bool) Result {
	if len(filtered) == 0 {
		if addOption {
			return Result{Kind: KindAddPrompt, Label: AddPrefix + text, Text: text}
		}
		return Result{Kind: KindEmpty, Text: text}
	}
	sorted := make([]string, len(filtered))
	copy(sorted, filtered)
	sort.Strings(sorted)
	return Result{Kind: KindMatches, Matches: sorted, Text: text}
}
