/*
Package tui is an interactive terminal demo of the autocomplete controller.

Four fields share one seeded vocabulary, each with its own controller:
matching anywhere, matching at start, matching at start with case, and
matching anywhere with the option to add new entries. Tab commits a
highlighted match or moves to the next field; Ctrl+C quits.
*/
package tui

import (
	"strings"

	"github.com/bastiangx/acfield/pkg/autocomplete"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	headerRows = 2
	fieldRows  = 3
	fieldLeft  = 2
	inputWidth = 30
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	labelStyle = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"})
	helpStyle = lipgloss.NewStyle().Faint(true)
)

type field struct {
	label string
	input textinput.Model
	host  *fieldHost
	ctl   *autocomplete.Controller
}

// Model is the bubbletea model holding the demo fields.
type Model struct {
	fields  []*field
	focus   int
	width   int
	height  int
	started bool
	log     *log.Logger
}

// New builds the demo. base supplies the layout and overflow settings;
// the match flags are set per field.
func New(words []string, base autocomplete.Config, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.Default()
	}
	m := &Model{height: 24, log: logger}

	demos := []struct {
		label                          string
		atStart, caseSensitive, addOpt bool
	}{
		{label: "Match anywhere"},
		{label: "Match at start", atStart: true},
		{label: "Match at start, case sensitive", atStart: true, caseSensitive: true},
		{label: "Match anywhere, add new entries", addOpt: true},
	}

	for i, s := range demos {
		cfg := base
		cfg.MatchAtStart = s.atStart
		cfg.CaseSensitive = s.caseSensitive
		cfg.AddOption = s.addOpt

		f := &field{label: s.label, input: textinput.New()}
		f.input.Prompt = ""
		f.input.Width = inputWidth
		f.host = &fieldHost{
			input:  &f.input,
			x:      fieldLeft,
			y:      headerRows + i*fieldRows + 1,
			width:  inputWidth,
			screen: &m.height,
		}
		f.ctl = autocomplete.New(f.host, words, cfg, autocomplete.WithLogger(logger))
		m.fields = append(m.fields, f)
	}
	return m
}

// Vocabulary returns the entries of the field that accepts new ones.
func (m *Model) Vocabulary() []string {
	return m.fields[len(m.fields)-1].ctl.Vocabulary()
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.started {
			m.started = true
			return m, m.setFocus(0)
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	f := m.fields[m.focus]
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if !m.started {
		m.started = true
		return m.setFocus(0)
	}

	f := m.fields[m.focus]
	if f.ctl.KeyDown(autocomplete.ParseKey(msg.String())) {
		return nil
	}

	switch msg.Type {
	case tea.KeyTab:
		return m.setFocus((m.focus + 1) % len(m.fields))
	case tea.KeyShiftTab:
		return m.setFocus((m.focus + len(m.fields) - 1) % len(m.fields))
	case tea.KeyEsc:
		return nil
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if after := f.input.Value(); after != before {
		m.log.Debug("Field edited", "field", f.label, "text", after)
		f.ctl.TextChanged(after)
	}
	return cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	if prev := m.fields[m.focus]; prev.input.Focused() {
		prev.input.Blur()
		prev.ctl.FocusLost()
	}
	m.focus = i
	f := m.fields[i]
	cmd := f.input.Focus()
	f.ctl.FocusGained()
	return cmd
}

func (m *Model) View() string {
	lines := []string{titleStyle.Render("acfield"), ""}
	for i, f := range m.fields {
		marker := "  "
		if i == m.focus {
			marker = "> "
		}
		lines = append(lines,
			marker+labelStyle.Render(f.label),
			strings.Repeat(" ", fieldLeft)+f.input.View(),
			"",
		)
	}
	lines = append(lines, helpStyle.Render("tab: complete or next field • ↑/↓: select • enter: accept • esc: close • ctrl+c: quit"))

	f := m.fields[m.focus]
	if box := f.host.view(); box != nil {
		lines = overlay(lines, box, f.host.x, f.host.top())
	}
	return strings.Join(lines, "\n")
}
