// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import (
	"fmt"
	"maps"
	"strconv"
)

// DefaultQuestionMark is appended to a question message when the question
// does not define its own mark.
const DefaultQuestionMark = " ?"

// Question describes one question of a questionnaire.
type Question struct {
	Name         string   `yaml:"name" json:"name" mapstructure:"name"`
	Type         string   `yaml:"type" json:"type" mapstructure:"type"`
	Message      string   `yaml:"message" json:"message" mapstructure:"message"`
	QuestionMark *string  `yaml:"question_mark,omitempty" json:"question_mark,omitempty" mapstructure:"question_mark"`
	Default      any      `yaml:"default,omitempty" json:"default,omitempty" mapstructure:"default"`
	Values       []Choice `yaml:"values,omitempty" json:"values,omitempty" mapstructure:"values"`
	Checked      []string `yaml:"checked,omitempty" json:"checked,omitempty" mapstructure:"checked"`
	Validators   []string `yaml:"validators,omitempty" json:"validators,omitempty" mapstructure:"validators"`

	// Extra holds every key that is not part of the common schema
	// (rows, remessage, reerror, ...).
	Extra map[string]any `yaml:",inline" json:"-" mapstructure:",remain"`
}

// Mark returns the question mark suffix, falling back to DefaultQuestionMark.
func (q Question) Mark() string {
	if q.QuestionMark == nil {
		return DefaultQuestionMark
	}
	return *q.QuestionMark
}

// Prompt returns the message followed by the question mark.
func (q Question) Prompt() string {
	return q.Message + q.Mark()
}

// DefaultString returns the default value as text. The boolean is false when
// no default was given.
func (q Question) DefaultString() (string, bool) {
	switch v := q.Default.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	default:
		return fmt.Sprint(v), true
	}
}

// ExtraArgs returns a copy of the keys outside the common schema.
func (q Question) ExtraArgs() map[string]any {
	extra := make(map[string]any, len(q.Extra))
	maps.Copy(extra, q.Extra)
	return extra
}

// WithMark is a helper for building questions in code.
func WithMark(mark string) *string {
	return &mark
}
