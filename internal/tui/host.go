package tui

import (
	"strings"

	"github.com/bastiangx/acfield/pkg/geometry"
	"github.com/bastiangx/acfield/pkg/match"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"})
	rowStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	spanStyle     = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
)

// fieldHost backs one text field. Terminal cells are the unit, so every
// character is 1x1.
type fieldHost struct {
	input  *textinput.Model
	x, y   int
	width  int
	screen *int

	visible  bool
	size     geometry.Size
	pos      geometry.Point
	items    []match.Item
	selected int
	offset   int
}

func (h *fieldHost) CharWidth() float64  { return 1 }
func (h *fieldHost) CharHeight() float64 { return 1 }

func (h *fieldHost) FieldScreenPosition() geometry.Point {
	return geometry.Point{X: float64(h.x), Y: float64(h.y)}
}

func (h *fieldHost) FieldSize() geometry.Size {
	return geometry.Size{Width: float64(h.width), Height: 1}
}

func (h *fieldHost) ScreenHeight() float64 { return float64(*h.screen) }

func (h *fieldHost) SetPopupVisible(visible bool)        { h.visible = visible }
func (h *fieldHost) SetPopupSize(size geometry.Size)     { h.size = size }
func (h *fieldHost) SetPopupPosition(pos geometry.Point) { h.pos = pos }

func (h *fieldHost) SetPopupItems(items []match.Item) {
	h.items = items
	h.offset = 0
}

func (h *fieldHost) SetPopupSelection(index int) { h.selected = index }
func (h *fieldHost) SetFieldText(text string)    { h.input.SetValue(text) }
func (h *fieldHost) SetCaretToEnd()              { h.input.CursorEnd() }

// rows is how many list rows fit inside the border.
func (h *fieldHost) rows() int {
	return max(int(h.size.Height)-2, 1)
}

// scroll keeps the selected row inside the visible window.
func (h *fieldHost) scroll() {
	rows := h.rows()
	if h.selected >= 0 {
		if h.selected < h.offset {
			h.offset = h.selected
		}
		if h.selected >= h.offset+rows {
			h.offset = h.selected - rows + 1
		}
	}
	h.offset = max(min(h.offset, len(h.items)-rows), 0)
}

// top is the first screen row of the popup box.
func (h *fieldHost) top() int {
	height := int(h.size.Height)
	if h.pos.Y < float64(h.y) {
		return max(h.y-height, 0)
	}
	return h.y + 1
}

// view renders the popup box, one string per screen row.
func (h *fieldHost) view() []string {
	if !h.visible || len(h.items) == 0 {
		return nil
	}
	h.scroll()
	width := max(int(h.size.Width)-2, 1)
	end := min(len(h.items), h.offset+h.rows())

	lines := make([]string, 0, end-h.offset)
	for i := h.offset; i < end; i++ {
		style := rowStyle
		if i == h.selected {
			style = selectedStyle
		}
		lines = append(lines, style.Width(width).Render(renderItem(h.items[i])))
	}
	return strings.Split(popupStyle.Render(strings.Join(lines, "\n")), "\n")
}

func renderItem(it match.Item) string {
	if it.Span.Empty() {
		return it.Text
	}
	return it.Text[:it.Span.Start] + spanStyle.Render(it.Text[it.Span.Start:it.Span.End]) + it.Text[it.Span.End:]
}

// overlay draws box over base with its top left corner at (x, y). Whatever
// the box covers on a row, and everything right of it, is replaced.
func overlay(base, box []string, x, y int) []string {
	for i, line := range box {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(base) {
			base = append(base, "")
		}
		left := ansi.Truncate(base[row], x, "")
		if w := lipgloss.Width(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		base[row] = left + line
	}
	return base
}
