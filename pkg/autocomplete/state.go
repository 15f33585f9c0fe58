package autocomplete

import (
	"slices"

	"github.com/bastiangx/acfield/pkg/geometry"
	"github.com/bastiangx/acfield/pkg/match"
)

// State is the controller's popup mode.
type State int

const (
	StateHidden State = iota
	StateMatches
	StateAddPrompt
)

func (s State) String() string {
	switch s {
	case StateMatches:
		return "matches"
	case StateAddPrompt:
		return "add-prompt"
	default:
		return "hidden"
	}
}

// PopupState is a snapshot of what the popup shows.
// Highlighted is -1 when nothing is selected and always -1 while hidden.
type PopupState struct {
	State         State
	Visible       bool
	AnchoredBelow bool
	Size          geometry.Size
	Position      geometry.Point
	Highlighted   int
	Items         []match.Item
}

func hiddenState() PopupState {
	return PopupState{State: StateHidden, Highlighted: -1}
}

func (p PopupState) clone() PopupState {
	p.Items = slices.Clone(p.Items)
	return p
}

// Equal compares two snapshots field by field, items included.
func (p PopupState) Equal(o PopupState) bool {
	return p.State == o.State &&
		p.Visible == o.Visible &&
		p.AnchoredBelow == o.AnchoredBelow &&
		p.Size == o.Size &&
		p.Position == o.Position &&
		p.Highlighted == o.Highlighted &&
		slices.Equal(p.Items, o.Items)
}
