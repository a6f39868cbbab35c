// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
// Package keyhelp renders the key bindings of the active question.
package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// fits reports whether used+n columns fit into width. A width of zero or
// less means unlimited.
func fits(width, used, n int) bool {
	return width <= 0 || used+n <= width
}

// FIX help.Model.ShortHelpView truncates too early
// ShortHelpView returns a compact help view for short displays.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	var items []string
	for _, kb := range bindings {
		if !kb.Enabled() || kb.Help().Key == "" {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	var b strings.Builder
	var usedWidth int
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	for i, item := range items {
		itemLen := lipgloss.Width(item)
		if i < len(items)-1 {
			// when not last, the tail must still fit after this item
			if fits(m.Width, usedWidth, itemLen+tailLen) {
				usedWidth += itemLen
				b.WriteString(item)
				continue
			}
			b.WriteString(tail)
			break
		}
		if fits(m.Width, usedWidth, itemLen) {
			b.WriteString(item)
		} else if fits(m.Width, usedWidth, tailLen) {
			b.WriteString(tail)
		}
	}

	return b.String()
}

// FullHelpView renders one column per group, skipping groups whose bindings
// are all disabled.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	var cols []string
	var usedWidth int
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	for _, group := range groups {
		if !slices.ContainsFunc(group, func(binding key.Binding) bool {
			return binding.Enabled() && binding.Help().Key != ""
		}) {
			continue
		}
		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() || binding.Help().Key == "" {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		col := lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		)
		colLen := lipgloss.Width(col)
		if !fits(m.Width, usedWidth, colLen) {
			break
		}
		usedWidth += colLen
		cols = append(cols, col)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
