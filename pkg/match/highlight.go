package match

import (
	"strings"

	"github.com/bastiangx/acfield/internal/utils"
)

// Span is a byte range [Start, End) inside an item's text.
// The zero value marks no highlight.
type Span struct {
	Start int `msgpack:"s"`
	End   int `msgpack:"e"`
}

// Empty reports whether the span highlights nothing.
func (s Span) Empty() bool { return s.End <= s.Start }

// Item is one row of the popup: the raw text plus the part to emphasise.
type Item struct {
	Text string `msgpack:"t"`
	Span Span   `msgpack:"h"`
}

// Markup wraps the highlighted part of the text in open and close, e.g.
// "<b>" and "</b>". Items without a highlight are returned unchanged.
func (it Item) Markup(open, close string) string {
	if it.Span.Empty() || it.Span.End > len(it.Text) {
		return it.Text
	}
	var sb strings.Builder
	sb.Grow(len(it.Text) + len(open) + len(close))
	sb.WriteString(it.Text[:it.Span.Start])
	sb.WriteString(open)
	sb.WriteString(it.Text[it.Span.Start:it.Span.End])
	sb.WriteString(close)
	sb.WriteString(it.Text[it.Span.End:])
	return sb.String()
}

// Highlight locates the first occurrence of text inside candidate.
func Highlight(candidate, text string, caseSensitive bool) Span {
	if text == "" {
		return Span{}
	}
	if caseSensitive {
		i := strings.Index(candidate, text)
		if i < 0 {
			return Span{}
		}
		return Span{Start: i, End: i + len(text)}
	}
	start, end := utils.IndexFold(candidate, text)
	if start < 0 {
		return Span{}
	}
	return Span{Start: start, End: end}
}

// Items builds popup rows for list, highlighting text in each.
func Items(list []string, text string, caseSensitive bool) []Item {
	items := make([]Item, len(list))
	for i, c := range list {
		items[i] = Item{Text: c, Span: Highlight(c, text, caseSensitive)}
	}
	return items
}
