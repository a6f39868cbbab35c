// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package handler

// Status tells how a handler finished.
type Status int

const (
	// StatusPending means the handler is still waiting for input.
	StatusPending Status = iota
	// StatusCompleted carries a validated answer.
	StatusCompleted
	// StatusCancelled aborts the current question only.
	StatusCancelled
	// StatusInterrupted aborts the whole run.
	StatusInterrupted
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	case StatusInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Result is the outcome of a handler. Answer is only set when Status is
// StatusCompleted.
type Result struct {
	Status Status
	Answer any
}

func Completed(answer any) Result { return Result{Status: StatusCompleted, Answer: answer} }

func Cancelled() Result { return Result{Status: StatusCancelled} }

func Interrupted() Result { return Result{Status: StatusInterrupted} }

// Done reports whether r is terminal.
func (r Result) Done() bool { return r.Status != StatusPending }

// Exit is handed to KeyBindings. Calling it ends the handler's event loop
// with the given result; only the first call counts.
type Exit func(Result)
