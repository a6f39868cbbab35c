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

// Handler renders one question and produces its answer.
//
// Widget and Widgets build the widgets on first use and return the same
// instances afterwards. Validate recomputes the error list from scratch and
// Errors returns the list of the last Validate call.
type Handler interface {
	Question() model.Question
	Widget() widgets.Widget
	Widgets() []widgets.Widget
	Layout() layout.Layout
	KeyBindings(exit Exit) KeyBindings
	Value() any
	Validate() []string
	Errors() []string
	ExtraArgs() map[string]any
}

// Mounter is implemented by handlers that manage the initial focus
// themselves. Other handlers get their primary widget focused.
type Mounter interface {
	Mount() tea.Cmd
}

// Confirm validates h and, when no error is left, exits with the answer.
// On errors the handler keeps waiting for input.
func Confirm(h Handler, exit Exit) tea.Cmd {
	if len(h.Validate()) > 0 {
		return nil
	}
	exit(Completed(h.Value()))
	return nil
}

// Base carries the state every handler shares: the question, the error
// list and the parsed validators.
type Base struct {
	question model.Question
	rules    []rule
	errors   []string
}

// NewBase checks the validators of q against a value shaped like the
// handler's answer.
func NewBase(q model.Question, sample any) (Base, error) {
	rules, err := parseRules(q.Validators, sample)
	if err != nil {
		return Base{}, err
	}
	return Base{question: q, rules: rules}, nil
}

func (b *Base) Question() model.Question { return b.question }

// Message is the prompt label: message followed by the question mark.
func (b *Base) Message() string { return b.question.Prompt() }

func (b *Base) ExtraArgs() map[string]any { return b.question.ExtraArgs() }

func (b *Base) Errors() []string {
	if len(b.errors) == 0 {
		return nil
	}
	return append([]string(nil), b.errors...)
}

// Check resets the error list and runs the validators against value.
func (b *Base) Check(value any) []string {
	b.errors = b.errors[:0]
	for _, r := range b.rules {
		if msg, ok := r.check(value); !ok {
			b.errors = append(b.errors, msg)
		}
	}
	return b.Errors()
}

// AddError appends a handler specific error to the current list.
func (b *Base) AddError(msg string) {
	b.errors = append(b.errors, msg)
}

// extraString returns the extra argument key as text, or fallback.
func (b *Base) extraString(key, fallback string) string {
	if v, ok := b.question.Extra[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}
