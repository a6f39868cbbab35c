// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/core/model"
	"github.com/toeirei/interrogator/internal/i18n"
	"github.com/toeirei/interrogator/ui/tui/layout"
	"github.com/toeirei/interrogator/ui/tui/models/helpers/form"
	"github.com/toeirei/interrogator/ui/tui/widgets"
)

// RePasswordHandler asks for a password twice. Enter on the first field
// moves to the repeat field; enter on the repeat field confirms. The extra
// arguments remessage and reerror override the repeat label and the
// mismatch error.
type RePasswordHandler struct {
	Base
	password *widgets.Field
	repeat   *widgets.Field
	ring     *form.Ring
}

func NewRePassword(q model.Question) (Handler, error) {
	base, err := NewBase(q, "")
	if err != nil {
		return nil, err
	}
	return &RePasswordHandler{Base: base}, nil
}

func (h *RePasswordHandler) build() {
	if h.password != nil {
		return
	}
	text, _ := h.question.DefaultString()
	opts := widgets.FieldOptions{
		Text:   text,
		Masked: true,
		Style:  "class:repassword.answer",
	}
	h.password = widgets.NewField(opts)
	h.repeat = widgets.NewField(opts)
	h.ring = form.NewRing(h.password, h.repeat)
}

// Password returns the primary field.
func (h *RePasswordHandler) Password() *widgets.Field {
	h.build()
	return h.password
}

// Repeat returns the confirmation field.
func (h *RePasswordHandler) Repeat() *widgets.Field {
	h.build()
	return h.repeat
}

func (h *RePasswordHandler) Widget() widgets.Widget { return h.Password() }

func (h *RePasswordHandler) Widgets() []widgets.Widget {
	h.build()
	return []widgets.Widget{h.password, h.repeat}
}

func (h *RePasswordHandler) Mount() tea.Cmd {
	h.build()
	return h.ring.Focus()
}

// RepeatMessage is the label of the confirmation field.
func (h *RePasswordHandler) RepeatMessage() string {
	return h.extraString("remessage", i18n.T("repassword.remessage")) + h.question.Mark()
}

func (h *RePasswordHandler) Layout() layout.Layout {
	h.build()
	style := "class:repassword.question"
	return layout.NewColumn(
		layout.NewRow(1, layout.Label{Text: h.Message(), Style: style}, h.password),
		layout.NewRow(1, layout.Label{Text: h.RepeatMessage(), Style: style}, h.repeat),
	)
}

func (h *RePasswordHandler) KeyBindings(exit Exit) KeyBindings {
	h.build()
	focus := form.DefaultKeyMap()
	do := func(action form.Action) func() tea.Cmd {
		return func() tea.Cmd { return h.focusAction(action, exit) }
	}
	return append(abortBindings(exit),
		Binding{Key: focus.Next, Action: do(form.ActionNext)},
		Binding{Key: focus.Prev, Action: do(form.ActionPrev)},
		confirmBinding(h, exit, "enter").withAction(do(form.ActionSubmit)),
	)
}

// focusAction moves the focus. Submitting from the password field moves on
// to the repeat field; submitting from the repeat field confirms.
func (h *RePasswordHandler) focusAction(action form.Action, exit Exit) tea.Cmd {
	if action == form.ActionSubmit {
		if h.ring.IsActive(h.repeat) {
			return Confirm(h, exit)
		}
		action = form.ActionNext
	}
	return h.ring.Do(action)
}

func (h *RePasswordHandler) Value() any { return h.Password().Value() }

// Validate runs the validators on the password, then compares both fields.
func (h *RePasswordHandler) Validate() []string {
	h.Check(h.Password().Value())
	if h.password.Value() != h.repeat.Value() {
		h.AddError(h.extraString("reerror", i18n.T("repassword.mismatch")))
	}
	return h.Errors()
}

var _ Handler = (*RePasswordHandler)(nil)
var _ Mounter = (*RePasswordHandler)(nil)
