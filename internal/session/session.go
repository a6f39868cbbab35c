// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Package session asks a list of questions one after another and collects
// the answers.
package session

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/core/model"
	"github.com/toeirei/interrogator/internal/i18n"
	"github.com/toeirei/interrogator/internal/logging"
	"github.com/toeirei/interrogator/ui/tui"
	"github.com/toeirei/interrogator/ui/tui/handler"
)

// CancelPolicy decides what a cancelled question does to the run.
type CancelPolicy string

const (
	// Abort stops the run with a *CancelledError.
	Abort CancelPolicy = "abort"
	// Skip leaves the answer unset and moves on.
	Skip CancelPolicy = "skip"
	// Retry asks the same question again with a fresh handler.
	Retry CancelPolicy = "retry"
)

// ParseCancelPolicy accepts the policy names used in config files.
func ParseCancelPolicy(s string) (CancelPolicy, error) {
	switch p := CancelPolicy(s); p {
	case Abort, Skip, Retry:
		return p, nil
	case "":
		return Abort, nil
	default:
		return "", fmt.Errorf("unknown cancel policy %q", s)
	}
}

// ErrInterrupted is returned when the user aborts the whole run.
var ErrInterrupted = errors.New("interrupted")

// CancelledError is returned when a question was cancelled under the
// Abort policy.
type CancelledError struct {
	Question string
}

func (e *CancelledError) Error() string {
	return i18n.T("session.cancelled", e.Question)
}

// AskFunc presents one handler and reports how it ended.
type AskFunc func(ctx context.Context, h handler.Handler) (handler.Result, error)

// Runner drives a questionnaire.
type Runner struct {
	// Registry resolves question types; nil means handler.Default.
	Registry *handler.Registry
	OnCancel CancelPolicy
	// Ask presents a handler; nil runs it in a bubbletea program with
	// ProgramOptions.
	Ask            AskFunc
	ProgramOptions []tea.ProgramOption
}

// Run asks every question in order. On error the answers collected so far
// are returned along with it.
func (r *Runner) Run(ctx context.Context, questions []model.Question) (model.Answers, error) {
	names, err := Names(questions)
	if err != nil {
		return nil, err
	}

	answers := make(model.Answers, len(questions))
	for i, q := range questions {
		answer, ok, err := r.askOne(ctx, names[i], q)
		if err != nil {
			return answers, err
		}
		if ok {
			answers[names[i]] = answer
		}
	}
	return answers, nil
}

func (r *Runner) askOne(ctx context.Context, name string, q model.Question) (any, bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, false, fmt.Errorf("%w: %w", ErrInterrupted, err)
		}

		// a handler is never reused, every presentation gets a new one
		h, err := r.registry().New(q)
		if err != nil {
			return nil, false, err
		}

		logging.Debugf("asking %s (%s)", name, q.Type)
		res, err := r.ask(ctx, h)
		if err != nil {
			return nil, false, fmt.Errorf("question %q: %w", name, err)
		}
		logging.Debugf("question %s ended: %s", name, res.Status)

		switch res.Status {
		case handler.StatusCompleted:
			return res.Answer, true, nil
		case handler.StatusInterrupted:
			return nil, false, ErrInterrupted
		case handler.StatusCancelled:
			switch r.OnCancel {
			case Skip:
				logging.Infof("question %s skipped", name)
				return nil, false, nil
			case Retry:
				continue
			default:
				return nil, false, &CancelledError{Question: name}
			}
		default:
			return nil, false, fmt.Errorf("question %q: handler exited without a result", name)
		}
	}
}

func (r *Runner) registry() *handler.Registry {
	if r.Registry != nil {
		return r.Registry
	}
	return handler.Default
}

func (r *Runner) ask(ctx context.Context, h handler.Handler) (handler.Result, error) {
	if r.Ask != nil {
		return r.Ask(ctx, h)
	}
	return tui.Ask(ctx, h, r.ProgramOptions...)
}

// Names returns the answer key of every question: its name, or q<N> (1
// based) when it has none. Duplicate keys are an error.
func Names(questions []model.Question) ([]string, error) {
	names := make([]string, len(questions))
	seen := make(map[string]int, len(questions))
	for i, q := range questions {
		name := q.Name
		if name == "" {
			name = fmt.Sprintf("q%d", i+1)
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("questions %d and %d share the name %q", prev+1, i+1, name)
		}
		seen[name] = i
		names[i] = name
	}
	return names, nil
}
