// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package model

// Answers maps question names to the answers collected for them. Text based
// questions store a string, selectmany stores a []string.
type Answers map[string]any

// String returns the answer for name when it is a string.
func (a Answers) String(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok
}

// Strings returns the answer for name when it is a list of identifiers.
func (a Answers) Strings(name string) ([]string, bool) {
	v, ok := a[name].([]string)
	return v, ok
}
