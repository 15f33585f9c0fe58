package autocomplete

import (
	"github.com/bastiangx/acfield/pkg/geometry"
	"github.com/bastiangx/acfield/pkg/match"
)

// Op names a Surface method.
type Op string

const (
	OpVisible   Op = "visible"
	OpSize      Op = "size"
	OpPosition  Op = "position"
	OpItems     Op = "items"
	OpSelection Op = "selection"
	OpFieldText Op = "text"
	OpCaretEnd  Op = "caret_end"
)

// Command is one deferred Surface call. The controller queues commands
// while it holds its lock and applies them once the lock is released.
type Command struct {
	Op       Op             `msgpack:"op"`
	Visible  bool           `msgpack:"visible,omitempty"`
	Size     geometry.Size  `msgpack:"size,omitempty"`
	Position geometry.Point `msgpack:"pos,omitempty"`
	Items    []match.Item   `msgpack:"items,omitempty"`
	Index    int            `msgpack:"index,omitempty"`
	Text     string         `msgpack:"text,omitempty"`
}

// Apply replays the command on s.
func (c Command) Apply(s Surface) {
	switch c.Op {
	case OpVisible:
		s.SetPopupVisible(c.Visible)
	case OpSize:
		s.SetPopupSize(c.Size)
	case OpPosition:
		s.SetPopupPosition(c.Position)
	case OpItems:
		s.SetPopupItems(c.Items)
	case OpSelection:
		s.SetPopupSelection(c.Index)
	case OpFieldText:
		s.SetFieldText(c.Text)
	case OpCaretEnd:
		s.SetCaretToEnd()
	}
}

// Recorder is a Surface that keeps every command it receives.
// Hosts that forward commands elsewhere (IPC, tests) embed it.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) SetPopupVisible(visible bool) {
	r.Commands = append(r.Commands, Command{Op: OpVisible, Visible: visible})
}

func (r *Recorder) SetPopupSize(size geometry.Size) {
	r.Commands = append(r.Commands, Command{Op: OpSize, Size: size})
}

func (r *Recorder) SetPopupPosition(pos geometry.Point) {
	r.Commands = append(r.Commands, Command{Op: OpPosition, Position: pos})
}

func (r *Recorder) SetPopupItems(items []match.Item) {
	r.Commands = append(r.Commands, Command{Op: OpItems, Items: items})
}

func (r *Recorder) SetPopupSelection(index int) {
	r.Commands = append(r.Commands, Command{Op: OpSelection, Index: index})
}

func (r *Recorder) SetFieldText(text string) {
	r.Commands = append(r.Commands, Command{Op: OpFieldText, Text: text})
}

func (r *Recorder) SetCaretToEnd() {
	r.Commands = append(r.Commands, Command{Op: OpCaretEnd})
}

// Take returns the recorded commands and clears the recorder.
func (r *Recorder) Take() []Command {
	cmds := r.Commands
	r.Commands = nil
	return cmds
}
