// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package handler

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/interrogator/ui/tui/layout"
	"github.com/toeirei/interrogator/ui/tui/models/components/keyhelp"
	"github.com/toeirei/interrogator/ui/tui/util"
	"github.com/toeirei/interrogator/ui/tui/widgets"
)

// State is the lifecycle position of a mounted handler.
type State int

const (
	StateUninitialized State = iota
	StateWidgetBuilt
	StateMounted
	StateAwaitingInput
	StateCompleted
	StateCancelled
	StateInterrupted
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateWidgetBuilt:
		return "widget-built"
	case StateMounted:
		return "mounted"
	case StateAwaitingInput:
		return "awaiting-input"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Prompt runs one handler inside a bubbletea program.
type Prompt struct {
	handler  Handler
	bindings KeyBindings
	state    State
	result   Result
	help     *keyhelp.Model
	size     util.Size

	// ShowHelp renders the key help line below the question.
	ShowHelp bool
}

// NewPrompt builds the handler's widgets and key bindings.
func NewPrompt(h Handler) *Prompt {
	p := &Prompt{handler: h, help: keyhelp.New(), ShowHelp: true}
	h.Widgets()
	p.state = StateWidgetBuilt
	p.bindings = h.KeyBindings(p.exit)

	maps := []help.KeyMap{p.bindings}
	for _, w := range h.Widgets() {
		if hw, ok := w.(widgets.Helper); ok {
			maps = append(maps, hw.Help())
		}
	}
	p.help.KeyMap = util.MergeKeyMaps(maps...)
	return p
}

func (p *Prompt) Handler() Handler { return p.handler }

func (p *Prompt) State() State { return p.state }

// Result returns the outcome; its Status is StatusPending until the handler
// exits.
func (p *Prompt) Result() Result { return p.result }

// Done reports whether the handler reached a terminal state.
func (p *Prompt) Done() bool { return p.result.Done() }

// Mount focuses the handler's widgets. Further calls are no-ops.
func (p *Prompt) Mount() tea.Cmd {
	if p.state != StateWidgetBuilt {
		return nil
	}
	p.state = StateMounted

	var cmd tea.Cmd
	if m, ok := p.handler.(Mounter); ok {
		cmd = m.Mount()
	} else {
		cmd = p.handler.Widget().Focus()
	}
	p.state = StateAwaitingInput
	return cmd
}

func (p *Prompt) Init() tea.Cmd {
	return p.Mount()
}

func (p *Prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.Done() {
		return p, tea.Quit
	}
	mountCmd := p.Mount()

	if p.size.Update(msg) {
		p.help.Update(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if cmd, ok := p.bindings.Dispatch(kmsg); ok {
			return p, p.settle(tea.Batch(mountCmd, cmd))
		}
		if kmsg.String() == "?" && p.acceptsHelpToggle() {
			p.help.ToggleExpanded()
			return p, mountCmd
		}
	}

	cmds := []tea.Cmd{mountCmd}
	for _, w := range p.handler.Widgets() {
		cmds = append(cmds, w.Update(msg))
	}
	return p, p.settle(tea.Batch(cmds...))
}

// acceptsHelpToggle is false when "?" should reach a text input.
func (p *Prompt) acceptsHelpToggle() bool {
	for _, w := range p.handler.Widgets() {
		if _, ok := w.(widgets.Cursorer); ok && w.Focused() {
			return false
		}
	}
	return true
}

func (p *Prompt) settle(cmd tea.Cmd) tea.Cmd {
	if p.Done() {
		return tea.Batch(cmd, tea.Quit)
	}
	return cmd
}

func (p *Prompt) exit(r Result) {
	if p.Done() || !r.Done() {
		return
	}
	p.result = r
	switch r.Status {
	case StatusCompleted:
		p.state = StateCompleted
	case StatusCancelled:
		p.state = StateCancelled
	case StatusInterrupted:
		p.state = StateInterrupted
	}
}

func (p *Prompt) View() string {
	parts := []string{p.handler.Layout().View()}

	if p.Done() {
		return parts[0] + "\n"
	}

	if errs := p.handler.Errors(); len(errs) > 0 {
		style := layout.Style("error")
		for _, e := range errs {
			parts = append(parts, style.Render("! "+e))
		}
	}
	if p.ShowHelp {
		if h := p.help.View(); h != "" {
			parts = append(parts, "", layout.Style("help").Render(h))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

var _ tea.Model = (*Prompt)(nil)
