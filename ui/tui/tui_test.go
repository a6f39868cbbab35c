// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/core/model"
	"github.com/toeirei/interrogator/ui/tui/handler"
)

func headless(in io.Reader) []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithInput(in),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	}
}

func TestAskCompletes(t *testing.T) {
	h, err := handler.New(model.Question{Type: "input", Message: "Name"})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := Ask(ctx, h, headless(strings.NewReader("bob\r"))...)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if res != handler.Completed("bob") {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestAskCancelledContext(t *testing.T) {
	h, err := handler.New(model.Question{Type: "input"})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Ask(ctx, h, headless(strings.NewReader(""))...)
	if err != nil {
		t.Fatalf("a cancelled context is not an error: %v", err)
	}
	if res.Status != handler.StatusInterrupted {
		t.Fatalf("expected interrupted, got %+v", res)
	}
}
