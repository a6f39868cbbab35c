// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package handler

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/internal/i18n"
	"github.com/toeirei/interrogator/util/slicest"
)

// Binding ties a key binding to the action it triggers.
type Binding struct {
	Key    key.Binding
	Action func() tea.Cmd
}

// KeyBindings is checked in order; the first matching binding wins.
type KeyBindings []Binding

// Dispatch runs the action bound to msg. The boolean is false when no
// binding matched.
func (kb KeyBindings) Dispatch(msg tea.KeyMsg) (tea.Cmd, bool) {
	for _, b := range kb {
		if key.Matches(msg, b.Key) {
			return b.Action(), true
		}
	}
	return nil, false
}

func (kb KeyBindings) ShortHelp() []key.Binding {
	return slicest.Map(kb, func(b Binding) key.Binding { return b.Key })
}

func (kb KeyBindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{kb.ShortHelp()}
}

var _ help.KeyMap = KeyBindings(nil)

func bind(keys []string, helpKey, helpDesc string, action func() tea.Cmd) Binding {
	return Binding{
		Key:    key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, helpDesc)),
		Action: action,
	}
}

// abortBindings binds ctrl+c to an interrupt of the run and esc to a
// cancellation of the question.
func abortBindings(exit Exit) KeyBindings {
	return KeyBindings{
		bind([]string{"ctrl+c"}, "ctrl+c", i18n.T("help.interrupt"), func() tea.Cmd {
			exit(Interrupted())
			return nil
		}),
		bind([]string{"esc"}, "esc", i18n.T("help.cancel"), func() tea.Cmd {
			exit(Cancelled())
			return nil
		}),
	}
}

// confirmBinding validates h and completes on success.
func confirmBinding(h Handler, exit Exit, keys ...string) Binding {
	return bind(keys, keys[0], i18n.T("help.confirm"), func() tea.Cmd {
		return Confirm(h, exit)
	})
}

func (b Binding) withAction(action func() tea.Cmd) Binding {
	b.Action = action
	return b
}
