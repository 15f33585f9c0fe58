// Package vocab holds the candidate list a field completes against.
package vocab

import (
	"strings"

	"github.com/bastiangx/acfield/pkg/match"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Vocabulary is an ordered, append-only list of candidates.
//
// Start-anchored lookups go through two patricia tries: one keyed by the
// candidate itself and one keyed by its lowercase form. Both store every
// original spelling so duplicates survive. Substring lookups scan the list.
//
// A Vocabulary is not safe for concurrent use; its owner serializes access.
type Vocabulary struct {
	words  []string
	exact  *patricia.Trie
	folded *patricia.Trie
}

// New returns a vocabulary seeded with a copy of words.
func New(words []string) *Vocabulary {
	v := &Vocabulary{
		words:  make([]string, 0, len(words)),
		exact:  patricia.NewTrie(),
		folded: patricia.NewTrie(),
	}
	for _, w := range words {
		v.Add(w)
	}
	return v
}

// Add appends word. Duplicates are kept.
func (v *Vocabulary) Add(word string) {
	v.words = append(v.words, word)
	if word == "" {
		return
	}
	index(v.exact, word, word)
	index(v.folded, strings.ToLower(word), word)
}

func index(trie *patricia.Trie, key, word string) {
	p := patricia.Prefix(key)
	if item := trie.Get(p); item != nil {
		trie.Set(p, append(item.([]string), word))
		return
	}
	trie.Insert(p, []string{word})
}

// Len returns the number of candidates, duplicates included.
func (v *Vocabulary) Len() int { return len(v.words) }

// Words returns a copy of the candidates in insertion order.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// Match returns the candidates kept for text under mode. The order is
// unspecified; callers sort through match.Resolve.
func (v *Vocabulary) Match(text string, mode match.Mode) []string {
	if text == "" {
		return v.Words()
	}
	if !mode.AtStart {
		return match.Filter(v.words, text, mode)
	}

	trie, key := v.exact, text
	if !mode.CaseSensitive {
		trie, key = v.folded, strings.ToLower(text)
	}

	var kept []string
	err := trie.VisitSubtree(patricia.Prefix(key), func(_ patricia.Prefix, item patricia.Item) error {
		kept = append(kept, item.([]string)...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting vocabulary subtree: %v", err)
		return match.Filter(v.words, text, mode)
	}
	return kept
}
