// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/core/model"
	"github.com/toeirei/interrogator/ui/tui/layout"
	"github.com/toeirei/interrogator/ui/tui/widgets"
)

// SelectManyHandler asks for any number of entries of Question.Values.
// Question.Checked lists the entries checked up front. The answer is a
// []string in declaration order.
type SelectManyHandler struct {
	Base
	list *widgets.SelectMany
}

func NewSelectMany(q model.Question) (Handler, error) {
	if len(q.Values) == 0 {
		return nil, errNoValues
	}
	base, err := NewBase(q, []string(nil))
	if err != nil {
		return nil, err
	}
	return &SelectManyHandler{Base: base}, nil
}

func (h *SelectManyHandler) List() *widgets.SelectMany {
	if h.list == nil {
		current, _ := h.question.DefaultString()
		h.list = widgets.NewSelectMany(h.question.Values, h.question.Checked, current, "class:selectmany.answer")
	}
	return h.list
}

func (h *SelectManyHandler) Widget() widgets.Widget { return h.List() }

func (h *SelectManyHandler) Widgets() []widgets.Widget { return []widgets.Widget{h.List()} }

func (h *SelectManyHandler) Layout() layout.Layout {
	return layout.NewColumn(
		layout.Label{Text: h.Message(), Style: "class:selectmany.question"},
		h.List(),
	)
}

func (h *SelectManyHandler) KeyBindings(exit Exit) KeyBindings {
	h.List().OnAccept = func([]string) tea.Cmd {
		return Confirm(h, exit)
	}
	return abortBindings(exit)
}

func (h *SelectManyHandler) Value() any { return h.List().Checked() }

// Validate hands an empty selection to the validators as nil so that
// "required" rejects it.
func (h *SelectManyHandler) Validate() []string {
	checked := h.List().Checked()
	if len(checked) == 0 {
		checked = nil
	}
	return h.Check(checked)
}

var _ Handler = (*SelectManyHandler)(nil)
