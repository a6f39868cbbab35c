// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/interrogator/core/model"
	"github.com/toeirei/interrogator/internal/session"
	"github.com/toeirei/interrogator/ui/tui/handler"
)

const questionnaire = `
- name: user
  type: input
  message: User
- name: color
  type: selectone
  message: Color
  values: [red, green]
- name: tags
  type: selectmany
  message: Tags
  values: [a, b]
`

// answerWith replaces the interactive prompt with fixed results, keyed by
// question name.
func answerWith(t *testing.T, results map[string]handler.Result) {
	t.Helper()
	orig := askFunc
	askFunc = func(_ context.Context, h handler.Handler) (handler.Result, error) {
		r, ok := results[h.Question().Name]
		if !ok {
			return handler.Result{}, errors.New("unexpected question " + h.Question().Name)
		}
		return r, nil
	}
	origTerminal := hasTerminal
	hasTerminal = func() bool { return true }
	t.Cleanup(func() {
		askFunc = orig
		hasTerminal = origTerminal
	})
}

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)
	return tmp
}

func writeQuestions(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "questions.yaml")
	if err := os.WriteFile(path, []byte(questionnaire), 0o600); err != nil {
		t.Fatalf("write questions: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"run", "types", "config", "version"} {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected subcommand %s to be registered", name)
		}
	}
	if cmd.Version == "" {
		t.Fatalf("expected a version")
	}
}

func TestRun_PrintsYAMLInQuestionOrder(t *testing.T) {
	dir := isolate(t)
	answerWith(t, map[string]handler.Result{
		"user":  handler.Completed("alice"),
		"color": handler.Completed("green"),
		"tags":  handler.Completed([]string{"b"}),
	})

	out, _, err := execute(t, "run", writeQuestions(t, dir))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	userAt, colorAt := strings.Index(out, "user: alice"), strings.Index(out, "color: green")
	if userAt < 0 || colorAt < 0 || userAt > colorAt || !strings.Contains(out, "- b") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRun_JSONAndSkip(t *testing.T) {
	dir := isolate(t)
	answerWith(t, map[string]handler.Result{
		"user":  handler.Completed("alice"),
		"color": handler.Cancelled(),
		"tags":  handler.Completed([]string{"a", "b"}),
	})

	out, _, err := execute(t, "run", "--output", "json", "--on-cancel", "skip", writeQuestions(t, dir))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "{\n  \"user\": \"alice\",\n  \"tags\": [\n    \"a\",\n    \"b\"\n  ]\n}\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRun_CancelAborts(t *testing.T) {
	dir := isolate(t)
	answerWith(t, map[string]handler.Result{
		"user": handler.Cancelled(),
	})

	out, _, err := execute(t, "run", writeQuestions(t, dir))
	var cancelled *session.CancelledError
	if !errors.As(err, &cancelled) || cancelled.Question != "user" {
		t.Fatalf("expected a cancelled error, got %v", err)
	}
	if out != "" {
		t.Fatalf("nothing should be printed on abort: %q", out)
	}
}

func TestRun_Interrupted(t *testing.T) {
	dir := isolate(t)
	answerWith(t, map[string]handler.Result{
		"user": handler.Interrupted(),
	})
	if _, _, err := execute(t, "run", "--on-cancel", "skip", writeQuestions(t, dir)); !errors.Is(err, session.ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
}

func TestRun_Clipboard(t *testing.T) {
	dir := isolate(t)
	answerWith(t, map[string]handler.Result{
		"user":  handler.Completed("alice"),
		"color": handler.Completed("red"),
		"tags":  handler.Completed([]string{}),
	})
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	defer func() { writeClipboard = orig }()

	out, stderr, err := execute(t, "run", "--clipboard", writeQuestions(t, dir))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if copied != out {
		t.Fatalf("clipboard should receive the printed answers, got %q", copied)
	}
	if !strings.Contains(stderr, "clipboard") {
		t.Fatalf("expected a confirmation on stderr, got %q", stderr)
	}
}

func TestRun_RequiresTerminal(t *testing.T) {
	dir := isolate(t)
	orig := hasTerminal
	hasTerminal = func() bool { return false }
	defer func() { hasTerminal = orig }()

	if _, _, err := execute(t, "run", writeQuestions(t, dir)); err == nil || !strings.Contains(err.Error(), "terminal") {
		t.Fatalf("expected a terminal error, got %v", err)
	}
}

func TestRun_QuestionsFromStdin(t *testing.T) {
	isolate(t)
	answerWith(t, map[string]handler.Result{
		"user":  handler.Completed("alice"),
		"color": handler.Completed("red"),
		"tags":  handler.Completed([]string{"a"}),
	})

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	if _, err := w.WriteString(questionnaire); err != nil {
		t.Fatalf("write pipe: %v", err)
	}
	w.Close()
	origStdin := os.Stdin
	os.Stdin = r
	defer func() {
		os.Stdin = origStdin
		r.Close()
	}()

	out, _, err := execute(t, "run", "-")
	if err != nil {
		t.Fatalf("run -: %v", err)
	}
	if !strings.Contains(out, "user: alice") || !strings.Contains(out, "color: red") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestControllingTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	dir := t.TempDir()
	missing := filepath.Join(dir, "tty")
	if controllingTerminal(r, missing) {
		t.Fatalf("a pipe without a terminal device is not a terminal")
	}
	if controllingTerminal(nil, missing) {
		t.Fatalf("no stdin and no terminal device is not a terminal")
	}

	regular := filepath.Join(dir, "file")
	if err := os.WriteFile(regular, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if controllingTerminal(r, regular) {
		t.Fatalf("a regular file is not a terminal device")
	}
}

func TestRun_BadInput(t *testing.T) {
	dir := isolate(t)
	if _, _, err := execute(t, "run", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if _, _, err := execute(t, "run", "--output", "xml", writeQuestions(t, dir)); err == nil {
		t.Fatalf("expected an error for an unknown output format")
	}
}

func TestTypes(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "types")
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	for _, name := range []string{"input", "password", "repassword", "selectmany"} {
		if !strings.Contains(out, name+"\n") {
			t.Fatalf("missing %s in %q", name, out)
		}
	}
}

func TestConfigInitAndShow(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cfg", "interrogator.yaml")

	if _, _, err := execute(t, "config", "init", "--path", path, "--language", "de"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, _, err := execute(t, "config", "init", "--path", path); err == nil {
		t.Fatalf("existing files need --force")
	}

	out, _, err := execute(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "language: de") || !strings.Contains(out, "on_cancel: abort") {
		t.Fatalf("unexpected config:\n%s", out)
	}
}

func TestEncodeAnswers(t *testing.T) {
	answers := model.Answers{"b": "2", "a": "1"}
	out, err := encodeAnswers(answers, []string{"b", "missing", "a"}, "yaml")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	text := string(out)
	if b, a := strings.Index(text, "b:"), strings.Index(text, "a:"); b < 0 || a < b || strings.Contains(text, "missing") {
		t.Fatalf("unexpected yaml: %q", out)
	}
	out, err = encodeAnswers(model.Answers{}, nil, "json")
	if err != nil || string(out) != "{}\n" {
		t.Fatalf("unexpected json: %q, %v", out, err)
	}
}
