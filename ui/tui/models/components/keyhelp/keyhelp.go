// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/ui/tui/util"
)

// MaxWidth caps the help line on wide terminals.
const MaxWidth = 120

type Model struct {
	KeyMap   help.KeyMap
	size     util.Size
	help     help.Model
	Expanded bool
}

func New() *Model {
	return &Model{
		help: help.New(),
	}
}

// Update tracks the terminal width.
func (m *Model) Update(msg tea.Msg) {
	if m.size.Update(msg) {
		m.help.Width = util.Clamp(0, m.size.Width, MaxWidth)
	}
}

func (m Model) View() string {
	if m.KeyMap == nil {
		return ""
	}
	if m.Expanded {
		return FullHelpView(m.help, m.KeyMap.FullHelp())
	}
	return ShortHelpView(m.help, m.KeyMap.ShortHelp())
}

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}
