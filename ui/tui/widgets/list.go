// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/core/model"
	"github.com/toeirei/interrogator/ui/tui/layout"
	"github.com/toeirei/interrogator/ui/tui/util"
)

// list is the cursor handling shared by SelectOne and SelectMany.
type list struct {
	choices []model.Choice
	cursor  int
	focused bool
	style   string
	keys    ListKeyMap
}

func newList(choices []model.Choice, current string, style string, keys ListKeyMap) list {
	l := list{choices: choices, style: style, keys: keys}
	l.moveTo(current)
	return l
}

func (l *list) moveTo(value string) bool {
	for i, c := range l.choices {
		if c.Value == value {
			l.cursor = i
			return true
		}
	}
	return false
}

// move handles the navigation keys and reports whether msg was consumed.
func (l *list) move(msg tea.KeyMsg) bool {
	if len(l.choices) == 0 {
		return false
	}
	switch {
	case key.Matches(msg, l.keys.Up):
		l.cursor = util.Wrap(l.cursor-1, len(l.choices))
	case key.Matches(msg, l.keys.Down):
		l.cursor = util.Wrap(l.cursor+1, len(l.choices))
	case msg.Type == tea.KeyHome:
		l.cursor = 0
	case msg.Type == tea.KeyEnd:
		l.cursor = len(l.choices) - 1
	default:
		return false
	}
	return true
}

func (l *list) render(marker func(i int, c model.Choice) string) string {
	lines := make([]string, 0, len(l.choices))
	for i, c := range l.choices {
		pointer := "  "
		style := layout.Style(l.style)
		if i == l.cursor {
			pointer = layout.Style("cursor").Render(">") + " "
			if l.focused {
				style = layout.Style("selected")
			}
		}
		lines = append(lines, pointer+marker(i, c)+style.Render(c.Display()))
	}
	return strings.Join(lines, "\n")
}

func (l *list) Focus() tea.Cmd {
	l.focused = true
	return nil
}

func (l *list) Blur() { l.focused = false }

func (l *list) Focused() bool { return l.focused }

// Cursor returns the index of the highlighted choice.
func (l *list) Cursor() int { return l.cursor }

func (l *list) Choices() []model.Choice { return l.choices }
