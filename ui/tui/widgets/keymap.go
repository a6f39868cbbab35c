// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package widgets

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/interrogator/internal/i18n"
)

// ListKeyMap holds the bindings of the select widgets.
type ListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Accept key.Binding
}

func (k ListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Accept}
}

func (k ListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Accept}}
}

var _ help.KeyMap = (*ListKeyMap)(nil)

func selectOneKeyMap() ListKeyMap {
	return ListKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", i18n.T("help.move"))),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", i18n.T("help.move"))),
		Toggle: key.NewBinding(key.WithDisabled()),
		Accept: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", i18n.T("help.select"))),
	}
}

func selectManyKeyMap() ListKeyMap {
	return ListKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", i18n.T("help.move"))),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", i18n.T("help.move"))),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", i18n.T("help.toggle"))),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", i18n.T("help.confirm"))),
	}
}
