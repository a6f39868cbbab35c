// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package handler

import (
	"fmt"

	"github.com/toeirei/interrogator/core/model"
	"github.com/toeirei/interrogator/ui/tui/layout"
	"github.com/toeirei/interrogator/ui/tui/widgets"
)

// TextHandler asks for multi-line text. Enter inserts a newline, ctrl+x
// confirms. The extra argument rows sets the height.
type TextHandler struct {
	Base
	rows int
	area *widgets.Area
}

func NewText(q model.Question) (Handler, error) {
	base, err := NewBase(q, "")
	if err != nil {
		return nil, err
	}
	rows, err := extraInt(q.Extra, "rows", widgets.DefaultRows)
	if err != nil {
		return nil, err
	}
	if rows <= 0 {
		return nil, fmt.Errorf("rows: must be positive, got %d", rows)
	}
	return &TextHandler{Base: base, rows: rows}, nil
}

func (h *TextHandler) Area() *widgets.Area {
	if h.area == nil {
		text, _ := h.question.DefaultString()
		h.area = widgets.NewArea(widgets.AreaOptions{
			Text:  text,
			Rows:  h.rows,
			Style: "class:text.answer",
		})
	}
	return h.area
}

func (h *TextHandler) Widget() widgets.Widget { return h.Area() }

func (h *TextHandler) Widgets() []widgets.Widget { return []widgets.Widget{h.Area()} }

func (h *TextHandler) Layout() layout.Layout {
	return layout.NewRow(1,
		layout.Label{Text: h.Message(), Style: "class:text.question"},
		h.Area(),
	)
}

func (h *TextHandler) KeyBindings(exit Exit) KeyBindings {
	return append(abortBindings(exit), confirmBinding(h, exit, "ctrl+x"))
}

func (h *TextHandler) Value() any { return h.Area().Value() }

func (h *TextHandler) Validate() []string { return h.Check(h.Area().Value()) }

var _ Handler = (*TextHandler)(nil)
