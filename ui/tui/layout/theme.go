// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package layout

import (
	"maps"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
	colorAccent    = lipgloss.Color("205")
	colorError     = lipgloss.Color("196")
	colorSuccess   = lipgloss.Color("40")
)

// Theme maps style tags such as "password.question" to lipgloss styles.
type Theme map[string]lipgloss.Style

// DefaultTheme resolves the generic tags every handler uses. Handler
// specific tags ("selectone.answer") fall back to their last segment.
var DefaultTheme = Theme{
	"question": lipgloss.NewStyle().Foreground(colorHighlight).Bold(true),
	"answer":   lipgloss.NewStyle(),
	"error":    lipgloss.NewStyle().Foreground(colorError),
	"help":     lipgloss.NewStyle().Foreground(colorSubtle),
	"cursor":   lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
	"selected": lipgloss.NewStyle().Foreground(colorHighlight),
	"checked":  lipgloss.NewStyle().Foreground(colorSuccess),
	"done":     lipgloss.NewStyle().Foreground(colorSuccess),
}

var (
	themeMu sync.RWMutex
	active  = DefaultTheme
)

// SetTheme replaces the active theme. Tags missing from t are still looked
// up in DefaultTheme.
func SetTheme(t Theme) {
	merged := Theme{}
	maps.Copy(merged, DefaultTheme)
	maps.Copy(merged, t)
	themeMu.Lock()
	active = merged
	themeMu.Unlock()
}

// Style resolves a style tag. Tags may carry a "class:" prefix and are
// matched exactly first, then by their last dotted segment.
func Style(tag string) lipgloss.Style {
	tag = strings.TrimPrefix(tag, "class:")
	themeMu.RLock()
	defer themeMu.RUnlock()
	if s, ok := active[tag]; ok {
		return s
	}
	if i := strings.LastIndex(tag, "."); i >= 0 {
		if s, ok := active[tag[i+1:]]; ok {
			return s
		}
	}
	return lipgloss.NewStyle()
}
