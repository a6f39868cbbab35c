// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form keeps track of which of several inputs holds the focus.
package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/ui/tui/util"
)

// Ring cycles the focus over a fixed list of inputs. Exactly one input is
// focused once the ring has been focused.
type Ring struct {
	items       []util.Focusable
	activeIndex int
	focused     bool
}

func NewRing(items ...util.Focusable) *Ring {
	return &Ring{items: items}
}

func (r *Ring) Len() int { return len(r.items) }

func (r *Ring) ActiveIndex() int { return r.activeIndex }

func (r *Ring) Active() util.Focusable {
	if len(r.items) == 0 {
		return nil
	}
	return r.items[r.activeIndex]
}

// IsActive reports whether item currently holds the focus.
func (r *Ring) IsActive(item util.Focusable) bool {
	return r.focused && r.Active() == item
}

// Focus gives the focus to the active input.
func (r *Ring) Focus() tea.Cmd {
	if len(r.items) == 0 {
		return nil
	}
	r.focused = true
	return r.items[r.activeIndex].Focus()
}

func (r *Ring) Blur() {
	if len(r.items) == 0 {
		return
	}
	r.focused = false
	r.items[r.activeIndex].Blur()
}

func (r *Ring) Next() tea.Cmd { return r.changeActiveIndex(1) }

func (r *Ring) Prev() tea.Cmd { return r.changeActiveIndex(-1) }

// Do applies a focus action. Submit is left to the caller.
func (r *Ring) Do(action Action) tea.Cmd {
	switch action {
	case ActionNext:
		return r.Next()
	case ActionPrev:
		return r.Prev()
	}
	return nil
}

func (r *Ring) changeActiveIndex(delta int) tea.Cmd {
	if len(r.items) == 0 {
		return nil
	}
	delta = delta % len(r.items)

	if delta != 0 {
		old := r.activeIndex
		r.activeIndex = util.Wrap(r.activeIndex+delta, len(r.items))
		r.items[old].Blur()
	}

	return r.Focus()
}
