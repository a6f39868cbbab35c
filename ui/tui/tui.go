// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/ui/tui/handler"
)

// Ask runs h in its own bubbletea program until the handler exits.
// A cancelled context or a terminal interrupt is reported as an
// interrupted result, not as an error.
func Ask(ctx context.Context, h handler.Handler, opts ...tea.ProgramOption) (handler.Result, error) {
	prompt := handler.NewPrompt(h)
	_, err := tea.NewProgram(
		prompt,
		append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...,
	).Run()

	switch {
	case err == nil:
	case ctx.Err() != nil, errors.Is(err, tea.ErrInterrupted), errors.Is(err, tea.ErrProgramKilled):
		return handler.Interrupted(), nil
	default:
		return handler.Result{}, err
	}

	if !prompt.Done() {
		// the program stopped without the handler exiting
		return handler.Interrupted(), nil
	}
	return prompt.Result(), nil
}
