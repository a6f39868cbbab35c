// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package widgets

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/core/model"
	"github.com/toeirei/interrogator/ui/tui/layout"
	"github.com/toeirei/interrogator/util/slicest"
)

// SelectMany is a list of checkable entries. The confirm key calls OnAccept
// with the checked identifiers.
type SelectMany struct {
	list
	checked  map[string]bool
	OnAccept func(values []string) tea.Cmd
}

func NewSelectMany(choices []model.Choice, checked []string, current string, style string) *SelectMany {
	s := &SelectMany{
		list:    newList(choices, current, style, selectManyKeyMap()),
		checked: make(map[string]bool, len(checked)),
	}
	for _, v := range checked {
		s.checked[v] = true
	}
	return s
}

// Checked returns the checked identifiers in declaration order. Checked
// values that are not among the choices are dropped.
func (s *SelectMany) Checked() []string {
	checked := slicest.Filter(s.choices, func(c model.Choice) bool { return s.checked[c.Value] })
	return slicest.Map(checked, func(c model.Choice) string { return c.Value })
}

// IsChecked reports whether value is checked.
func (s *SelectMany) IsChecked(value string) bool { return s.checked[value] }

// Toggle flips the entry under the cursor.
func (s *SelectMany) Toggle() {
	if len(s.choices) == 0 {
		return
	}
	v := s.choices[s.cursor].Value
	s.checked[v] = !s.checked[v]
}

func (s *SelectMany) Update(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return nil
	}
	switch {
	case s.move(kmsg):
	case key.Matches(kmsg, s.keys.Toggle):
		s.Toggle()
	case key.Matches(kmsg, s.keys.Accept):
		if s.OnAccept != nil {
			return s.OnAccept(s.Checked())
		}
	}
	return nil
}

func (s *SelectMany) View() string {
	return s.render(func(_ int, c model.Choice) string {
		if s.checked[c.Value] {
			return layout.Style("checked").Render("[x]") + " "
		}
		return "[ ] "
	})
}

func (s *SelectMany) Help() help.KeyMap { return s.keys }

var _ Widget = (*SelectMany)(nil)
var _ Helper = (*SelectMany)(nil)
