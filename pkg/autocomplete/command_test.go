package autocomplete

import (
	"testing"

	"github.com/bastiangx/acfield/pkg/geometry"
	"github.com/bastiangx/acfield/pkg/match"
	"github.com/stretchr/testify/assert"
)

func TestCommandApplyReplaysOnSurface(t *testing.T) {
	cmds := []Command{
		{Op: OpSize, Size: geometry.Size{Width: 96, Height: 88}},
		{Op: OpPosition, Position: geometry.Point{X: 10, Y: 44}},
		{Op: OpItems, Items: []match.Item{{Text: "ant", Span: match.Span{Start: 0, End: 2}}}},
		{Op: OpSelection, Index: -1},
		{Op: OpVisible, Visible: true},
		{Op: OpFieldText, Text: "ant"},
		{Op: OpCaretEnd},
	}

	var r Recorder
	for _, cmd := range cmds {
		cmd.Apply(&r)
	}

	assert.Equal(t, cmds, r.Take())
	assert.Empty(t, r.Commands)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "hidden", StateHidden.String())
	assert.Equal(t, "matches", StateMatches.String())
	assert.Equal(t, "add-prompt", StateAddPrompt.String())
}
