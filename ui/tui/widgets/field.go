// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package widgets

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/ui/tui/layout"
)

// FieldOptions configures a single-line Field.
type FieldOptions struct {
	Text        string
	Placeholder string
	Masked      bool
	Completer   Completer
	Style       string
	CharLimit   int
}

// Field is a single-line text input. Masking and completion are options so
// that plain text, password and path inputs share one implementation.
type Field struct {
	input     textinput.Model
	completer Completer
	last      string
	primed    bool
}

func NewField(opts FieldOptions) *Field {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = opts.Placeholder
	input.CharLimit = opts.CharLimit
	input.TextStyle = layout.Style(opts.Style)
	input.Cursor.Style = layout.Style("cursor")
	if opts.Masked {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}

	f := &Field{input: input, completer: opts.Completer}
	if f.completer != nil {
		f.input.ShowSuggestions = true
	}
	f.SetValue(opts.Text)
	return f
}

// SetValue replaces the content and moves the cursor to its end.
func (f *Field) SetValue(s string) {
	f.input.SetValue(s)
	f.input.CursorEnd()
	f.refreshSuggestions()
}

func (f *Field) Value() string { return f.input.Value() }

func (f *Field) Cursor() int { return f.input.Position() }

func (f *Field) Masked() bool { return f.input.EchoMode == textinput.EchoPassword }

// Suggestions returns the completions matching the current content.
func (f *Field) Suggestions() []string { return f.input.MatchedSuggestions() }

func (f *Field) Focus() tea.Cmd { return f.input.Focus() }

func (f *Field) Blur() { f.input.Blur() }

func (f *Field) Focused() bool { return f.input.Focused() }

func (f *Field) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.refreshSuggestions()
	return cmd
}

func (f *Field) View() string {
	return f.input.View()
}

func (f *Field) refreshSuggestions() {
	if f.completer == nil {
		return
	}
	value := f.input.Value()
	if f.primed && value == f.last {
		return
	}
	f.last, f.primed = value, true
	f.input.SetSuggestions(f.completer.Complete(value))
}

var _ Widget = (*Field)(nil)
var _ Cursorer = (*Field)(nil)
