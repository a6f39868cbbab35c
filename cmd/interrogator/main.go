// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

// Command interrogator asks the questions of a YAML file in the terminal.
//
// Usage:
//
//	interrogator run questions.yaml
//	interrogator run -o json --on-cancel skip questions.yaml
//
// See --help for all options.
package main

import (
	"errors"
	"os"

	"github.com/toeirei/interrogator/internal/logging"
	"github.com/toeirei/interrogator/internal/session"
	"github.com/toeirei/interrogator/ui/cli"
)

func main() {
	os.Exit(exitCode(cli.Execute()))
}

// exitCode follows the shell convention of 130 for an interrupted run.
func exitCode(err error) int {
	var cancelled *session.CancelledError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, session.ErrInterrupted):
		return 130
	case errors.As(err, &cancelled):
		return 1
	default:
		logging.Errorf("%v", err)
		return 1
	}
}
