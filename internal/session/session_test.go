// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package session

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/toeirei/interrogator/core/model"
	"github.com/toeirei/interrogator/ui/tui/handler"
)

// scripted answers questions from a queue of results and records the
// handlers it was given.
type scripted struct {
	results  []handler.Result
	handlers []handler.Handler
}

func (s *scripted) ask(_ context.Context, h handler.Handler) (handler.Result, error) {
	s.handlers = append(s.handlers, h)
	if len(s.results) == 0 {
		return handler.Result{}, errors.New("script exhausted")
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r, nil
}

var questions = []model.Question{
	{Name: "user", Type: "input", Message: "User"},
	{Type: "selectone", Message: "Color", Values: model.Choices("red", "green")},
	{Name: "tags", Type: "selectmany", Message: "Tags", Values: model.Choices("a", "b")},
}

func TestRunCollectsAnswers(t *testing.T) {
	s := &scripted{results: []handler.Result{
		handler.Completed("alice"),
		handler.Completed("green"),
		handler.Completed([]string{"b"}),
	}}
	r := &Runner{Ask: s.ask}

	got, err := r.Run(context.Background(), questions)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := model.Answers{"user": "alice", "q2": "green", "tags": []string{"b"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if len(s.handlers) != 3 {
		t.Fatalf("expected one handler per question, got %d", len(s.handlers))
	}
}

func TestRunInterrupted(t *testing.T) {
	s := &scripted{results: []handler.Result{handler.Completed("alice"), handler.Interrupted()}}
	r := &Runner{Ask: s.ask, OnCancel: Skip}

	got, err := r.Run(context.Background(), questions)
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
	if !reflect.DeepEqual(got, model.Answers{"user": "alice"}) {
		t.Fatalf("partial answers expected, got %v", got)
	}
	if len(s.handlers) != 2 {
		t.Fatalf("interrupt must stop the run, asked %d", len(s.handlers))
	}
}

func TestRunCancelPolicies(t *testing.T) {
	t.Run("abort", func(t *testing.T) {
		s := &scripted{results: []handler.Result{handler.Cancelled()}}
		_, err := (&Runner{Ask: s.ask}).Run(context.Background(), questions)
		var cancelled *CancelledError
		if !errors.As(err, &cancelled) || cancelled.Question != "user" {
			t.Fatalf("expected CancelledError for user, got %v", err)
		}
		if err.Error() != `Question "user" was cancelled` {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("skip", func(t *testing.T) {
		s := &scripted{results: []handler.Result{
			handler.Cancelled(),
			handler.Completed("red"),
			handler.Cancelled(),
		}}
		got, err := (&Runner{Ask: s.ask, OnCancel: Skip}).Run(context.Background(), questions)
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		if !reflect.DeepEqual(got, model.Answers{"q2": "red"}) {
			t.Fatalf("skipped answers must stay unset: %v", got)
		}
	})

	t.Run("retry", func(t *testing.T) {
		s := &scripted{results: []handler.Result{
			handler.Cancelled(),
			handler.Completed("bob"),
			handler.Completed("red"),
			handler.Completed([]string{}),
		}}
		got, err := (&Runner{Ask: s.ask, OnCancel: Retry}).Run(context.Background(), questions)
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		if got["user"] != "bob" {
			t.Fatalf("retry should ask again: %v", got)
		}
		if s.handlers[0] == s.handlers[1] {
			t.Fatalf("a retried question needs a fresh handler")
		}
	})
}

func TestRunUnknownType(t *testing.T) {
	s := &scripted{}
	_, err := (&Runner{Ask: s.ask}).Run(context.Background(), []model.Question{{Type: "nonexistent"}})
	var unknown *handler.UnknownTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	if len(s.handlers) != 0 {
		t.Fatalf("nothing should be asked")
	}
}

func TestRunCustomRegistry(t *testing.T) {
	reg := handler.NewRegistry()
	reg.Register("name", handler.NewString)
	s := &scripted{results: []handler.Result{handler.Completed("x")}}

	got, err := (&Runner{Registry: reg, Ask: s.ask}).Run(context.Background(), []model.Question{{Type: "name"}})
	if err != nil || got["q1"] != "x" {
		t.Fatalf("unexpected result %v, %v", got, err)
	}
	if _, err := (&Runner{Registry: reg, Ask: s.ask}).Run(context.Background(), []model.Question{{Type: "input"}}); err == nil {
		t.Fatalf("the custom registry has no input type")
	}
}

func TestRunContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &scripted{}
	_, err := (&Runner{Ask: s.ask}).Run(ctx, questions)
	if !errors.Is(err, ErrInterrupted) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected interrupted by context, got %v", err)
	}
}

func TestRunAskError(t *testing.T) {
	s := &scripted{}
	if _, err := (&Runner{Ask: s.ask}).Run(context.Background(), questions); err == nil {
		t.Fatalf("ask errors must surface")
	}
}

func TestNames(t *testing.T) {
	got, err := Names([]model.Question{{Name: "a"}, {}, {Name: "c"}})
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "q2", "c"}) {
		t.Fatalf("unexpected names: %v", got)
	}
	if _, err := Names([]model.Question{{Name: "q2"}, {}}); err == nil {
		t.Fatalf("duplicate names must be rejected")
	}
}

func TestParseCancelPolicy(t *testing.T) {
	for in, want := range map[string]CancelPolicy{"": Abort, "abort": Abort, "skip": Skip, "retry": Retry} {
		got, err := ParseCancelPolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParseCancelPolicy(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseCancelPolicy("later"); err == nil {
		t.Fatalf("unknown policies must be rejected")
	}
}

func TestBind(t *testing.T) {
	var out struct {
		User  string   `mapstructure:"user"`
		Color string   `mapstructure:"q2"`
		Tags  []string `mapstructure:"tags"`
		Age   int      `mapstructure:"age"`
	}
	answers := model.Answers{"user": "alice", "q2": "green", "tags": []string{"a", "b"}, "age": "42"}
	if err := Bind(answers, &out); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if out.User != "alice" || out.Color != "green" || out.Age != 42 || !reflect.DeepEqual(out.Tags, []string{"a", "b"}) {
		t.Fatalf("unexpected struct: %+v", out)
	}

	var bad struct {
		Age int `mapstructure:"age"`
	}
	if err := Bind(model.Answers{"age": "old"}, &bad); err == nil {
		t.Fatalf("expected a conversion error")
	}
}
