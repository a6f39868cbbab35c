// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package form

type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	// ActionSubmit asks the owner of the ring to finish; the ring itself
	// ignores it.
	ActionSubmit
)
