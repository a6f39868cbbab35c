// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package widgets contains the interactive inputs owned by question
// handlers. Widgets ignore key messages while they are not focused.
package widgets

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/ui/tui/util"
)

// Widget is an interactive input. It is also a layout.Layout.
type Widget interface {
	util.Focusable
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Helper is implemented by widgets that bring their own key bindings.
type Helper interface {
	Help() help.KeyMap
}

// Cursorer is implemented by text widgets.
type Cursorer interface {
	Value() string
	Cursor() int
}
