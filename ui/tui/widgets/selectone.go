// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package widgets

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/core/model"
)

// SelectOne is a single choice list. Accepting an entry calls OnAccept.
type SelectOne struct {
	list
	OnAccept func(value string) tea.Cmd
}

// NewSelectOne creates the list with the cursor on current, or on the first
// entry when current is not one of the choices.
func NewSelectOne(choices []model.Choice, current string, style string) *SelectOne {
	return &SelectOne{list: newList(choices, current, style, selectOneKeyMap())}
}

// CurrentValue returns the identifier under the cursor.
func (s *SelectOne) CurrentValue() string {
	if len(s.choices) == 0 {
		return ""
	}
	return s.choices[s.cursor].Value
}

// Select moves the cursor to value.
func (s *SelectOne) Select(value string) bool { return s.moveTo(value) }

func (s *SelectOne) Update(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return nil
	}
	if s.move(kmsg) {
		return nil
	}
	if key.Matches(kmsg, s.keys.Accept) && len(s.choices) > 0 && s.OnAccept != nil {
		return s.OnAccept(s.CurrentValue())
	}
	return nil
}

func (s *SelectOne) View() string {
	return s.render(func(int, model.Choice) string { return "" })
}

func (s *SelectOne) Help() help.KeyMap { return s.keys }

var _ Widget = (*SelectOne)(nil)
var _ Helper = (*SelectOne)(nil)
