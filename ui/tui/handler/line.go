// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package handler

import (
	"github.com/toeirei/interrogator/core/model"
	"github.com/toeirei/interrogator/ui/tui/layout"
	"github.com/toeirei/interrogator/ui/tui/widgets"
)

// lineOptions parameterize the single-line handlers.
type lineOptions struct {
	class     string
	masked    bool
	completer widgets.Completer
}

// LineHandler asks for one line of text. String, password and path
// questions are LineHandlers with different options.
type LineHandler struct {
	Base
	opts  lineOptions
	field *widgets.Field
}

func newLine(q model.Question, opts lineOptions) (*LineHandler, error) {
	base, err := NewBase(q, "")
	if err != nil {
		return nil, err
	}
	return &LineHandler{Base: base, opts: opts}, nil
}

// NewString builds the plain text handler.
func NewString(q model.Question) (Handler, error) {
	return newLine(q, lineOptions{class: "input"})
}

// NewPassword builds the masked text handler.
func NewPassword(q model.Question) (Handler, error) {
	return newLine(q, lineOptions{class: "password", masked: true})
}

// NewPath builds a text handler completing file system paths. The extra
// argument only_directories restricts the completion to directories.
func NewPath(q model.Question) (Handler, error) {
	h, err := newLine(q, lineOptions{class: "path"})
	if err != nil {
		return nil, err
	}
	onlyDirs, err := extraBool(h.ExtraArgs(), "only_directories")
	if err != nil {
		return nil, err
	}
	h.opts.completer = widgets.PathCompleter{ExpandUser: true, OnlyDirectories: onlyDirs}
	return h, nil
}

func (h *LineHandler) widgetOptions() widgets.FieldOptions {
	text, _ := h.question.DefaultString()
	return widgets.FieldOptions{
		Text:        text,
		Placeholder: h.extraString("placeholder", ""),
		Masked:      h.opts.masked,
		Completer:   h.opts.completer,
		Style:       "class:" + h.opts.class + ".answer",
	}
}

// Field returns the text field, building it on first use.
func (h *LineHandler) Field() *widgets.Field {
	if h.field == nil {
		h.field = widgets.NewField(h.widgetOptions())
	}
	return h.field
}

func (h *LineHandler) Widget() widgets.Widget { return h.Field() }

func (h *LineHandler) Widgets() []widgets.Widget { return []widgets.Widget{h.Field()} }

func (h *LineHandler) Layout() layout.Layout {
	return layout.NewRow(1,
		layout.Label{Text: h.Message(), Style: "class:" + h.opts.class + ".question"},
		h.Field(),
	)
}

func (h *LineHandler) KeyBindings(exit Exit) KeyBindings {
	return append(abortBindings(exit), confirmBinding(h, exit, "enter"))
}

func (h *LineHandler) Value() any { return h.Field().Value() }

func (h *LineHandler) Validate() []string { return h.Check(h.Field().Value()) }

var _ Handler = (*LineHandler)(nil)
