// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package widgets

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/ui/tui/layout"
)

// DefaultRows is the height of an Area when no row count is configured.
const DefaultRows = 4

type AreaOptions struct {
	Text  string
	Rows  int
	Width int
	Style string
}

// Area is a multi-line text input. Enter inserts a newline.
type Area struct {
	input textarea.Model
}

func NewArea(opts AreaOptions) *Area {
	input := textarea.New()
	input.Prompt = ""
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.FocusedStyle.Text = layout.Style(opts.Style)
	input.BlurredStyle.Text = layout.Style(opts.Style)
	if opts.Width > 0 {
		input.SetWidth(opts.Width)
	}

	a := &Area{input: input}
	a.SetRows(opts.Rows)
	a.input.SetValue(opts.Text)
	return a
}

// SetRows changes the visible height. Non-positive values select DefaultRows.
func (a *Area) SetRows(rows int) {
	if rows <= 0 {
		rows = DefaultRows
	}
	if rows > a.input.MaxHeight && a.input.MaxHeight > 0 {
		a.input.MaxHeight = rows
	}
	a.input.SetHeight(rows)
}

func (a *Area) Rows() int { return a.input.Height() }

func (a *Area) Value() string { return a.input.Value() }

// Cursor returns the cursor as a rune offset into Value.
func (a *Area) Cursor() int {
	lines := strings.Split(a.input.Value(), "\n")
	row := min(a.input.Line(), len(lines)-1)
	offset := 0
	for _, line := range lines[:row] {
		offset += utf8.RuneCountInString(line) + 1
	}
	info := a.input.LineInfo()
	return offset + info.StartColumn + info.ColumnOffset
}

func (a *Area) Focus() tea.Cmd { return a.input.Focus() }

func (a *Area) Blur() { a.input.Blur() }

func (a *Area) Focused() bool { return a.input.Focused() }

func (a *Area) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd
}

func (a *Area) View() string {
	return a.input.View()
}

var _ Widget = (*Area)(nil)
var _ Cursorer = (*Area)(nil)
