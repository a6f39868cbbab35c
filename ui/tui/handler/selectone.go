// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package handler

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/core/model"
	"github.com/toeirei/interrogator/ui/tui/layout"
	"github.com/toeirei/interrogator/ui/tui/widgets"
)

var errNoValues = errors.New("values: at least one choice is required")

// SelectOneHandler asks for one entry of Question.Values. The question
// completes when the list accepts an entry.
type SelectOneHandler struct {
	Base
	list *widgets.SelectOne
}

func NewSelectOne(q model.Question) (Handler, error) {
	if len(q.Values) == 0 {
		return nil, errNoValues
	}
	base, err := NewBase(q, "")
	if err != nil {
		return nil, err
	}
	return &SelectOneHandler{Base: base}, nil
}

func (h *SelectOneHandler) List() *widgets.SelectOne {
	if h.list == nil {
		current, _ := h.question.DefaultString()
		h.list = widgets.NewSelectOne(h.question.Values, current, "class:selectone.answer")
	}
	return h.list
}

func (h *SelectOneHandler) Widget() widgets.Widget { return h.List() }

func (h *SelectOneHandler) Widgets() []widgets.Widget { return []widgets.Widget{h.List()} }

func (h *SelectOneHandler) Layout() layout.Layout {
	return layout.NewColumn(
		layout.Label{Text: h.Message(), Style: "class:selectone.question"},
		h.List(),
	)
}

func (h *SelectOneHandler) KeyBindings(exit Exit) KeyBindings {
	h.List().OnAccept = func(string) tea.Cmd {
		return Confirm(h, exit)
	}
	return abortBindings(exit)
}

func (h *SelectOneHandler) Value() any { return h.List().CurrentValue() }

func (h *SelectOneHandler) Validate() []string { return h.Check(h.List().CurrentValue()) }

var _ Handler = (*SelectOneHandler)(nil)
