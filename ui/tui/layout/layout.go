// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package layout composes labels and widgets into a displayable region.
// Style tags are opaque strings resolved through the active Theme.
package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/interrogator/util/slicest"
)

// Layout is anything that renders to a block of text.
type Layout interface {
	View() string
}

// Label is a piece of static text rendered with a style tag.
type Label struct {
	Text  string
	Style string
}

func (l Label) View() string {
	return Style(l.Style).Render(l.Text)
}

// Row places children side by side, separated by Padding spaces and aligned
// at the top.
type Row struct {
	Children []Layout
	Padding  int
}

func NewRow(padding int, children ...Layout) Row {
	return Row{Children: children, Padding: padding}
}

func (r Row) View() string {
	views := make([]string, 0, 2*len(r.Children))
	pad := strings.Repeat(" ", max(r.Padding, 0))
	for i, child := range r.Children {
		if i > 0 && pad != "" {
			views = append(views, pad)
		}
		views = append(views, child.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

// Column stacks children vertically, left aligned.
type Column struct {
	Children []Layout
}

func NewColumn(children ...Layout) Column {
	return Column{Children: children}
}

func (c Column) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, slicest.Map(c.Children, func(child Layout) string {
		return child.View()
	})...)
}

// Func adapts a plain function to Layout.
type Func func() string

func (f Func) View() string { return f() }
