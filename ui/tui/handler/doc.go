// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

/*
Package handler implements the question handlers and their lifecycle.

A Handler turns one model.Question into widgets, a layout and key bindings,
extracts the answer and validates it. Handlers are looked up by question type
in a Registry; the builtin types register themselves when the package is
loaded.

A Prompt mounts a handler into a bubbletea program. Key bindings report the
outcome through the Exit callback handed to KeyBindings, and the prompt quits
the program once a Result is known:

	h, err := handler.New(question)
	if err != nil {
		return err
	}
	p := handler.NewPrompt(h)
	if _, err := tea.NewProgram(p).Run(); err != nil {
		return err
	}
	switch res := p.Result(); res.Status {
	case handler.StatusCompleted:
		use(res.Answer)
	case handler.StatusCancelled, handler.StatusInterrupted:
		...
	}

Every builtin handler binds ctrl+c to an interrupt of the whole run and esc
to a cancellation of the current question.
*/
package handler
