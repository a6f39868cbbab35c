// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.
package widgets

import (
	"os"
	"path/filepath"
	"strings"
)

// Completer proposes full replacements for the current input. Proposals
// must start with the input so the text field can match them.
type Completer interface {
	Complete(input string) []string
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(input string) []string

func (f CompleterFunc) Complete(input string) []string { return f(input) }

// PathCompleter completes file system paths relative to the working
// directory. Directories are suggested with a trailing separator.
type PathCompleter struct {
	// OnlyDirectories hides regular files.
	OnlyDirectories bool
	// ExpandUser resolves a leading "~" when reading the directory. The
	// suggestions keep the "~" as typed.
	ExpandUser bool
	// Root is the directory relative paths are resolved against. Empty
	// means the working directory.
	Root string
}

func (c PathCompleter) Complete(input string) []string {
	dir, prefix := splitPath(input)

	readDir := dir
	if c.ExpandUser && strings.HasPrefix(readDir, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			readDir = home + readDir[1:]
		}
	}
	if readDir == "" {
		readDir = "."
	}
	if !filepath.IsAbs(readDir) && c.Root != "" {
		readDir = filepath.Join(c.Root, readDir)
	}

	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		isDir := e.IsDir()
		if !isDir && e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(readDir, name)); err == nil {
				isDir = info.IsDir()
			}
		}
		if c.OnlyDirectories && !isDir {
			continue
		}
		suggestion := dir + name
		if isDir {
			suggestion += string(os.PathSeparator)
		}
		out = append(out, suggestion)
	}
	return out
}

// splitPath splits input after its last separator, keeping the separator
// on the directory part.
func splitPath(input string) (dir, prefix string) {
	i := strings.LastIndexAny(input, `/`+string(os.PathSeparator))
	if i < 0 {
		return "", input
	}
	return input[:i+1], input[i+1:]
}
