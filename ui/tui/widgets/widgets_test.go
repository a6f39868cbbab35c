// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package widgets

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/interrogator/core/model"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestFieldDefaultAndTyping(t *testing.T) {
	f := NewField(FieldOptions{Text: "abc"})
	if f.Value() != "abc" || f.Cursor() != 3 {
		t.Fatalf("expected prefilled value with cursor at end, got %q/%d", f.Value(), f.Cursor())
	}

	f.Update(runes("x"))
	if f.Value() != "abc" {
		t.Fatalf("unfocused field must ignore keys, got %q", f.Value())
	}

	f.Focus()
	f.Update(runes("de"))
	if f.Value() != "abcde" || f.Cursor() != 5 {
		t.Fatalf("unexpected value after typing: %q/%d", f.Value(), f.Cursor())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if f.Value() != "abcd" {
		t.Fatalf("unexpected value after backspace: %q", f.Value())
	}
}

func TestFieldMasked(t *testing.T) {
	f := NewField(FieldOptions{Text: "secret", Masked: true})
	if !f.Masked() {
		t.Fatalf("field should be masked")
	}
	if strings.Contains(f.View(), "secret") {
		t.Fatalf("masked view leaks the content: %q", f.View())
	}
	if f.Value() != "secret" {
		t.Fatalf("masking must not change the value, got %q", f.Value())
	}
}

func TestFieldCompletion(t *testing.T) {
	c := CompleterFunc(func(string) []string { return []string{"alpha", "beta"} })
	f := NewField(FieldOptions{Completer: c})
	f.Focus()
	f.Update(runes("al"))
	if got := f.Suggestions(); !reflect.DeepEqual(got, []string{"alpha"}) {
		t.Fatalf("unexpected suggestions: %v", got)
	}
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.Value() != "alpha" {
		t.Fatalf("tab should accept the suggestion, got %q", f.Value())
	}
}

func TestAreaRowsAndCursor(t *testing.T) {
	a := NewArea(AreaOptions{Text: "hello"})
	if a.Rows() != DefaultRows {
		t.Fatalf("expected %d rows, got %d", DefaultRows, a.Rows())
	}
	if a.Value() != "hello" || a.Cursor() != 5 {
		t.Fatalf("expected prefilled value with cursor at end, got %q/%d", a.Value(), a.Cursor())
	}

	a.SetRows(7)
	if a.Rows() != 7 {
		t.Fatalf("expected 7 rows, got %d", a.Rows())
	}

	a.Focus()
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a.Update(runes("world"))
	if a.Value() != "hello\nworld" {
		t.Fatalf("enter should insert a newline, got %q", a.Value())
	}
	if a.Cursor() != len("hello\nworld") {
		t.Fatalf("unexpected cursor: %d", a.Cursor())
	}
}

func TestSelectOne(t *testing.T) {
	s := NewSelectOne(model.Choices("a", "b", "c"), "b", "")
	if s.CurrentValue() != "b" {
		t.Fatalf("default should position the cursor, got %q", s.CurrentValue())
	}

	var accepted string
	s.OnAccept = func(v string) tea.Cmd { accepted = v; return nil }
	s.Focus()

	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	if s.CurrentValue() != "a" {
		t.Fatalf("cursor should wrap around, got %q", s.CurrentValue())
	}
	s.Update(tea.KeyMsg{Type: tea.KeyUp})
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if accepted != "c" {
		t.Fatalf("expected accept with %q, got %q", "c", accepted)
	}
	if !strings.Contains(s.View(), "c") {
		t.Fatalf("view should list the choices: %q", s.View())
	}
}

func TestSelectOneUnknownDefault(t *testing.T) {
	s := NewSelectOne(model.Choices("a", "b"), "zzz", "")
	if s.CurrentValue() != "a" || s.Cursor() != 0 {
		t.Fatalf("unknown default should leave the cursor on the first entry")
	}
}

func TestSelectMany(t *testing.T) {
	s := NewSelectMany(model.Choices("a", "b", "c"), []string{"c", "ghost", "a"}, "", "")
	if got := s.Checked(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("expected declaration order without unknown values, got %v", got)
	}

	var accepted []string
	s.OnAccept = func(v []string) tea.Cmd { accepted = v; return nil }
	s.Focus()
	s.Update(tea.KeyMsg{Type: tea.KeySpace})
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s.Update(tea.KeyMsg{Type: tea.KeySpace})
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !reflect.DeepEqual(accepted, []string{"b", "c"}) {
		t.Fatalf("unexpected accepted values: %v", accepted)
	}
	if !strings.Contains(s.View(), "[x]") {
		t.Fatalf("view should mark checked entries: %q", s.View())
	}
}

func TestPathCompleter(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"data.txt", ".hidden", filepath.Join("docs", "readme.md")} {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	c := PathCompleter{Root: root}
	sep := string(os.PathSeparator)

	if got := c.Complete("d"); !reflect.DeepEqual(got, []string{"data.txt", "docs" + sep}) {
		t.Fatalf("unexpected completions: %v", got)
	}
	if got := c.Complete("docs/"); !reflect.DeepEqual(got, []string{"docs/readme.md"}) {
		t.Fatalf("unexpected nested completions: %v", got)
	}
	if got := c.Complete("."); !reflect.DeepEqual(got, []string{".hidden"}) {
		t.Fatalf("hidden files need a dot prefix, got %v", got)
	}
	if got := (PathCompleter{Root: root, OnlyDirectories: true}).Complete(""); !reflect.DeepEqual(got, []string{"docs" + sep}) {
		t.Fatalf("unexpected directory completions: %v", got)
	}
	if got := c.Complete("missing/"); got != nil {
		t.Fatalf("unreadable directories yield nothing, got %v", got)
	}
}
