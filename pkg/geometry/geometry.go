/*
Package geometry sizes and places the suggestion popup.

Sizes are expressed in host units (pixels for a windowing toolkit, cells for
a terminal) and derived from measured character metrics:

	width  = (longest item + Padding) * charWidth
	height = (min(MaxVisible, count) + MatchRowsSlack) * charHeight

The add-prompt row uses len(text) + AddPadding characters and AddRows rows.
The fractional row counts leave room for borders and are never rounded.
*/
package geometry

import "github.com/mattn/go-runewidth"

// Layout holds the tuning constants of the sizing formula.
type Layout struct {
	MaxVisible     int     `toml:"max_visible"`
	Padding        float64 `toml:"padding"`
	AddPadding     float64 `toml:"add_padding"`
	MatchRowsSlack float64 `toml:"match_rows_slack"`
	AddRows        float64 `toml:"add_rows"`
}

// DefaultLayout returns the stock constants.
func DefaultLayout() Layout {
	return Layout{
		MaxVisible:     5,
		Padding:        4,
		AddPadding:     8, // 4 for "Add " plus padding
		MatchRowsSlack: 2.5,
		AddRows:        3.5,
	}
}

// Metrics is the size of one character cell.
type Metrics struct {
	CharWidth  float64
	CharHeight float64
}

// Size is a popup extent.
type Size struct {
	Width  float64 `msgpack:"w"`
	Height float64 `msgpack:"h"`
}

// Point is a screen position.
type Point struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// Anchor is the text field the popup hangs off, in screen coordinates.
type Anchor struct {
	Position Point
	Size     Size
}

// Placement is where the popup goes and which side of the field it is on.
type Placement struct {
	Position      Point
	AnchoredBelow bool
}

// StringWidth returns the number of character cells s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// MatchSize sizes a popup listing items.
// An empty list is sized like the add-prompt row for text.
func (l Layout) MatchSize(items []string, text string, m Metrics) Size {
	if len(items) == 0 {
		return l.AddPromptSize(text, m)
	}

	longest := 0
	for _, it := range items {
		if w := StringWidth(it); w > longest {
			longest = w
		}
	}

	rows := float64(min(l.MaxVisible, len(items))) + l.MatchRowsSlack
	return Size{
		Width:  (float64(longest) + l.Padding) * m.CharWidth,
		Height: rows * m.CharHeight,
	}
}

// AddPromptSize sizes the single "Add <text>" row.
func (l Layout) AddPromptSize(text string, m Metrics) Size {
	return Size{
		Width:  (float64(StringWidth(text)) + l.AddPadding) * m.CharWidth,
		Height: l.AddRows * m.CharHeight,
	}
}

// Place puts a popup of size next to anchor. It goes below the field unless
// that would cross screenHeight, in which case it flips above.
// The left edge always matches the field's.
func Place(anchor Anchor, size Size, screenHeight float64) Placement {
	bottom := anchor.Position.Y + anchor.Size.Height
	if bottom+size.Height > screenHeight {
		return Placement{
			Position:      Point{X: anchor.Position.X, Y: anchor.Position.Y - size.Height},
			AnchoredBelow: false,
		}
	}
	return Placement{
		Position:      Point{X: anchor.Position.X, Y: bottom},
		AnchoredBelow: true,
	}
}
