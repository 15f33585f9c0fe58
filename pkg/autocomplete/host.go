package autocomplete

import (
	"strings"

	"github.com/bastiangx/acfield/pkg/geometry"
	"github.com/bastiangx/acfield/pkg/match"
)

// Key is a key press the controller cares about.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyDown
	KeyUp
	KeyEnter
	KeyTab
)

var keyNames = map[Key]string{
	KeyOther:  "other",
	KeyEscape: "esc",
	KeyDown:   "down",
	KeyUp:     "up",
	KeyEnter:  "enter",
	KeyTab:    "tab",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "other"
}

// ParseKey maps key names as reported by terminals and IPC clients to a
// Key. Unknown names map to KeyOther.
func ParseKey(name string) Key {
	switch strings.ToLower(name) {
	case "esc", "escape":
		return KeyEscape
	case "down", "arrowdown":
		return KeyDown
	case "up", "arrowup":
		return KeyUp
	case "enter", "return":
		return KeyEnter
	case "tab":
		return KeyTab
	default:
		return KeyOther
	}
}

// Surface receives the commands the controller issues.
// Implementations may call back into the Controller from any method.
type Surface interface {
	SetPopupVisible(visible bool)
	SetPopupSize(size geometry.Size)
	SetPopupPosition(pos geometry.Point)
	SetPopupItems(items []match.Item)
	SetPopupSelection(index int)
	SetFieldText(text string)
	SetCaretToEnd()
}

// Measurer reports character metrics and field geometry.
// Its methods must not call back into the Controller.
type Measurer interface {
	CharWidth() float64
	CharHeight() float64
	FieldScreenPosition() geometry.Point
	FieldSize() geometry.Size
	ScreenHeight() float64
}

// Host is the toolkit side of a field: it draws and it measures.
type Host interface {
	Surface
	Measurer
}
