/*
Package autocomplete drives a text field's suggestion popup.

A Controller owns the vocabulary and the popup state of one field. The host
toolkit reports text changes, key presses and focus changes; the controller
filters the vocabulary, sizes and places the popup, and answers with Surface
calls (show, hide, resize, move, list items, select a row, replace the
field text).

	ctl := autocomplete.New(host, words, autocomplete.DefaultConfig())
	ctl.FocusGained()
	ctl.TextChanged("an")
	consumed := ctl.KeyDown(autocomplete.KeyEnter)

Events are processed one at a time under a single mutex. Surface calls are
made after the mutex is released, so a host may call back into the
controller from inside them. The echo of the controller's own SetFieldText
is recognised and does not reopen the popup.
*/
package autocomplete

import (
	"slices"
	"sync"

	"github.com/bastiangx/acfield/pkg/geometry"
	"github.com/bastiangx/acfield/pkg/match"
	"github.com/bastiangx/acfield/pkg/vocab"
	"github.com/charmbracelet/log"
)

// Config is fixed when the controller is created.
type Config struct {
	MatchAtStart  bool
	AddOption     bool
	CaseSensitive bool
	// Overflow lists every match and lets the host scroll. When false only
	// the first Layout.MaxVisible sorted matches are listed and selectable.
	Overflow bool
	Layout   geometry.Layout
}

// DefaultConfig matches anywhere, ignores case and offers no add prompt.
func DefaultConfig() Config {
	return Config{
		Overflow: true,
		Layout:   geometry.DefaultLayout(),
	}
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.log = logger
		}
	}
}

// Controller is the autocomplete state machine for one field.
type Controller struct {
	mu    sync.Mutex
	cfg   Config
	host  Host
	log   *log.Logger
	vocab *vocab.Vocabulary

	text  string
	popup PopupState
	// shown is the candidate text behind each listed row, in display order.
	// It is nil while hidden or showing the add prompt.
	shown []string

	echo        string
	echoPending bool
}

// frame is the host geometry sampled at the start of an event.
type frame struct {
	metrics geometry.Metrics
	anchor  geometry.Anchor
	screen  float64
}

// New creates a controller for host. The controller keeps its own copy of
// words; read it back with Vocabulary.
func New(host Host, words []string, cfg Config, opts ...Option) *Controller {
	if cfg.Layout.MaxVisible <= 0 {
		cfg.Layout.MaxVisible = geometry.DefaultLayout().MaxVisible
	}
	c := &Controller{
		cfg:   cfg,
		host:  host,
		log:   log.Default(),
		vocab: vocab.New(words),
		popup: hiddenState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) mode() match.Mode {
	return match.Mode{AtStart: c.cfg.MatchAtStart, CaseSensitive: c.cfg.CaseSensitive}
}

// TextChanged handles an edit of the field's text.
func (c *Controller) TextChanged(text string) {
	c.run(func(f frame) ([]Command, bool) {
		if c.echoPending && text == c.echo {
			c.echoPending = false
			c.text = text
			return nil, false
		}
		c.echoPending = false
		c.text = text
		return c.refresh(text, false, f), false
	})
}

// KeyDown handles a key press and reports whether the key was consumed.
// Unconsumed keys should get the host's default handling.
func (c *Controller) KeyDown(key Key) bool {
	return c.run(func(frame) ([]Command, bool) {
		return c.key(key)
	})
}

// FocusGained shows the whole vocabulary for an empty field, or the matches
// for the current text.
func (c *Controller) FocusGained() {
	c.run(func(f frame) ([]Command, bool) {
		return c.refresh(c.text, c.text == "", f), false
	})
}

// FocusLost hides the popup.
func (c *Controller) FocusLost() {
	c.run(func(frame) ([]Command, bool) {
		return c.hide(), false
	})
}

// Vocabulary returns the candidates, including any added through the add
// prompt.
func (c *Controller) Vocabulary() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vocab.Words()
}

// State returns a snapshot of the popup.
func (c *Controller) State() PopupState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.popup.clone()
}

// Text returns the field text as last reported or set by the controller.
func (c *Controller) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

func (c *Controller) run(fn func(frame) ([]Command, bool)) bool {
	f := c.measure()

	c.mu.Lock()
	cmds, consumed := fn(f)
	c.mu.Unlock()

	for _, cmd := range cmds {
		cmd.Apply(c.host)
	}
	return consumed
}

func (c *Controller) measure() frame {
	return frame{
		metrics: geometry.Metrics{
			CharWidth:  c.host.CharWidth(),
			CharHeight: c.host.CharHeight(),
		},
		anchor: geometry.Anchor{
			Position: c.host.FieldScreenPosition(),
			Size:     c.host.FieldSize(),
		},
		screen: c.host.ScreenHeight(),
	}
}

func (c *Controller) key(key Key) ([]Command, bool) {
	visible := c.popup.Visible

	switch key {
	case KeyEscape:
		if !visible {
			return nil, false
		}
		return c.hide(), true

	case KeyDown:
		if visible && c.popup.Highlighted+1 < len(c.popup.Items) {
			return c.selectRow(c.popup.Highlighted + 1), true
		}
		return nil, true

	case KeyUp:
		if visible && c.popup.Highlighted > -1 {
			return c.selectRow(c.popup.Highlighted - 1), true
		}
		return nil, true

	case KeyEnter:
		if !visible {
			return nil, false
		}
		if c.popup.State == StateAddPrompt {
			if c.popup.Highlighted == 0 {
				c.vocab.Add(c.text)
				c.log.Debug("Added candidate", "text", c.text, "size", c.vocab.Len())
			}
			return c.hide(), true
		}
		return c.commit(), true

	case KeyTab:
		if !visible {
			return nil, false
		}
		if c.popup.State == StateAddPrompt {
			return c.hide(), true
		}
		return c.commit(), true
	}

	return nil, false
}

func (c *Controller) selectRow(index int) []Command {
	c.popup.Highlighted = index
	return []Command{{Op: OpSelection, Index: index}}
}

// commit replaces the field text with the highlighted candidate. The list
// is derived again from the current vocabulary and text, in the orientation
// the popup was shown with. If it no longer matches the rows on screen, or
// the index does not fit, the popup closes without touching the text.
func (c *Controller) commit() []Command {
	index := c.popup.Highlighted
	if index < 0 {
		return c.hide()
	}

	res := c.resolve(c.text)
	if res.Kind != match.KindMatches {
		c.log.Debug("No matches left to commit", "text", c.text)
		return c.hide()
	}
	shown := c.order(c.window(res.Matches), c.popup.AnchoredBelow)
	if !slices.Equal(shown, c.shown) {
		c.log.Debug("Displayed candidates changed before commit", "was", len(c.shown), "now", len(shown))
		return c.hide()
	}
	if index >= len(shown) {
		c.log.Debug("Highlighted row out of range", "index", index, "rows", len(shown))
		return c.hide()
	}

	candidate := shown[index]
	c.text = candidate
	c.echo = candidate
	c.echoPending = true
	c.log.Debug("Committed candidate", "text", candidate, "index", index)

	cmds := []Command{{Op: OpFieldText, Text: candidate}, {Op: OpCaretEnd}}
	return append(cmds, c.hide()...)
}

// refresh recomputes the popup for text. showAll keeps the popup open for
// empty text.
func (c *Controller) refresh(text string, showAll bool, f frame) []Command {
	if text == "" && !showAll {
		return c.hide()
	}
	next, shown := c.compute(text, f)
	if next.State == StateHidden {
		return c.hide()
	}
	return c.show(next, shown)
}

func (c *Controller) resolve(text string) match.Result {
	return match.Resolve(c.vocab.Match(text, c.mode()), text, c.cfg.AddOption)
}

// window cuts sorted matches to the listed rows.
func (c *Controller) window(matches []string) []string {
	if !c.cfg.Overflow && len(matches) > c.cfg.Layout.MaxVisible {
		return matches[:c.cfg.Layout.MaxVisible]
	}
	return matches
}

// order returns list in display order. Above the field the list reads
// bottom-up so the first match sits next to the text.
func (c *Controller) order(list []string, below bool) []string {
	if below {
		return list
	}
	reversed := slices.Clone(list)
	slices.Reverse(reversed)
	return reversed
}

// compute derives the next popup state for text without side effects.
func (c *Controller) compute(text string, f frame) (PopupState, []string) {
	res := c.resolve(text)
	layout := c.cfg.Layout

	switch {
	case res.Kind == match.KindAddPrompt && text != "":
		size := layout.AddPromptSize(text, f.metrics)
		place := geometry.Place(f.anchor, size, f.screen)
		return PopupState{
			State:         StateAddPrompt,
			Visible:       true,
			AnchoredBelow: place.AnchoredBelow,
			Size:          size,
			Position:      place.Position,
			Highlighted:   0,
			Items:         []match.Item{{Text: res.Label}},
		}, nil

	case res.Kind == match.KindMatches:
		list := c.window(res.Matches)
		size := layout.MatchSize(list, text, f.metrics)
		place := geometry.Place(f.anchor, size, f.screen)

		list = c.order(list, place.AnchoredBelow)
		highlighted := 0
		if !place.AnchoredBelow {
			highlighted = len(list) - 1
		}
		return PopupState{
			State:         StateMatches,
			Visible:       true,
			AnchoredBelow: place.AnchoredBelow,
			Size:          size,
			Position:      place.Position,
			Highlighted:   highlighted,
			Items:         match.Items(list, text, c.cfg.CaseSensitive),
		}, list
	}

	return hiddenState(), nil
}

func (c *Controller) show(next PopupState, shown []string) []Command {
	cmds := []Command{
		{Op: OpSize, Size: next.Size},
		{Op: OpPosition, Position: next.Position},
	}
	if !c.popup.Visible || !slices.Equal(c.popup.Items, next.Items) {
		cmds = append(cmds, Command{Op: OpItems, Items: slices.Clone(next.Items)})
	}
	cmds = append(cmds, Command{Op: OpSelection, Index: next.Highlighted})
	if !c.popup.Visible {
		cmds = append(cmds, Command{Op: OpVisible, Visible: true})
		c.log.Debug("Popup shown", "state", next.State, "rows", len(next.Items), "below", next.AnchoredBelow)
	}

	c.popup = next
	c.shown = shown
	return cmds
}

func (c *Controller) hide() []Command {
	wasVisible := c.popup.Visible
	c.popup = hiddenState()
	c.shown = nil
	if !wasVisible {
		return nil
	}
	c.log.Debug("Popup hidden")
	return []Command{{Op: OpVisible, Visible: false}}
}
