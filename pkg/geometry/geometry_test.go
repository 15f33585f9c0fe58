package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var metrics = Metrics{CharWidth: 8, CharHeight: 16}

func TestMatchSize(t *testing.T) {
	l := DefaultLayout()

	testCases := []struct {
		items       []string
		text        string
		expected    Size
		description string
	}{
		{[]string{"ant"}, "an", Size{Width: 7 * 8, Height: 3.5 * 16}, "single match"},
		{[]string{"Anteater", "ant", "elephant"}, "an", Size{Width: 12 * 8, Height: 5.5 * 16}, "three matches"},
		{
			[]string{"a", "b", "c", "d", "e", "f", "giraffe"}, "",
			Size{Width: 11 * 8, Height: 7.5 * 16}, "rows capped at five",
		},
		{nil, "zzz", Size{Width: 11 * 8, Height: 3.5 * 16}, "no items sizes the add row"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, l.MatchSize(tc.items, tc.text, metrics), tc.description)
	}
}

func TestAddPromptSize(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, Size{Width: 13 * 8, Height: 3.5 * 16}, l.AddPromptSize("hello", metrics))
	assert.Equal(t, Size{Width: 8 * 8, Height: 3.5 * 16}, l.AddPromptSize("", metrics))
}

func TestFractionalRowsAreKept(t *testing.T) {
	l := DefaultLayout()
	s := l.MatchSize([]string{"a", "b"}, "", Metrics{CharWidth: 1, CharHeight: 1})
	assert.Equal(t, 4.5, s.Height)
}

func TestCustomLayout(t *testing.T) {
	l := Layout{MaxVisible: 2, Padding: 1, AddPadding: 5, MatchRowsSlack: 1, AddRows: 2}

	assert.Equal(t, Size{Width: 4, Height: 3}, l.MatchSize([]string{"abc", "d", "e"}, "", Metrics{CharWidth: 1, CharHeight: 1}))
	assert.Equal(t, Size{Width: 6, Height: 2}, l.AddPromptSize("x", Metrics{CharWidth: 1, CharHeight: 1}))
}

func TestStringWidthCountsCells(t *testing.T) {
	assert.Equal(t, 3, StringWidth("ant"))
	assert.Equal(t, 4, StringWidth("日本"))
}

func TestPlaceFlipsExactlyAtScreenEdge(t *testing.T) {
	anchor := Anchor{Position: Point{X: 40, Y: 100}, Size: Size{Width: 200, Height: 20}}
	size := Size{Width: 96, Height: 80}

	// 100 + 20 + 80 == 200: fits, stays below.
	below := Place(anchor, size, 200)
	assert.True(t, below.AnchoredBelow)
	assert.Equal(t, Point{X: 40, Y: 120}, below.Position)

	// One unit less of screen flips it.
	above := Place(anchor, size, 199)
	assert.False(t, above.AnchoredBelow)
	assert.Equal(t, Point{X: 40, Y: 20}, above.Position)
}

func TestPlaceAboveMayGoNegative(t *testing.T) {
	anchor := Anchor{Position: Point{X: 5, Y: 10}, Size: Size{Height: 20}}
	p := Place(anchor, Size{Height: 80}, 50)

	assert.False(t, p.AnchoredBelow)
	assert.Equal(t, Point{X: 5, Y: -70}, p.Position)
}
