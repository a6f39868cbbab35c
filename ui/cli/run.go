// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/toeirei/interrogator/internal/i18n"
	"github.com/toeirei/interrogator/internal/logging"
	"github.com/toeirei/interrogator/internal/questionfile"
	"github.com/toeirei/interrogator/internal/session"
	"golang.org/x/term"
)

// Replaced in tests.
var (
	hasTerminal    = func() bool { return controllingTerminal(os.Stdin, ttyPath) }
	askFunc        session.AskFunc
	writeClipboard = clipboard.WriteAll
)

// ttyPath is the device bubbletea reads keys from when stdin is redirected.
const ttyPath = "/dev/tty"

// controllingTerminal reports whether keys can be read from stdin or, when
// stdin is a pipe (as with "run -"), from the terminal device at tty.
func controllingTerminal(stdin *os.File, tty string) bool {
	if stdin != nil && term.IsTerminal(int(stdin.Fd())) {
		return true
	}
	f, err := os.Open(tty)
	if err != nil {
		return false
	}
	defer f.Close()
	return term.IsTerminal(int(f.Fd()))
}

func newRunCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <questions.yaml|->",
		Short: "Ask the questions of a file and print the answers",
		Long: `Asks every question of the given YAML file in order and prints the answers.
Use "-" to read the questionnaire from stdin; the questions are then still
answered on the terminal.

Keys: enter confirms, esc cancels the current question, ctrl+c aborts the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestionnaire(cmd, app, args[0])
		},
	}

	cmd.Flags().StringP("output", "o", "yaml", `Answer format ("yaml", "json")`)
	cmd.Flags().String("on-cancel", "abort", `What a cancelled question does ("abort", "skip", "retry")`)
	cmd.Flags().Bool("alt-screen", false, "Ask in the alternate screen buffer")
	cmd.Flags().Bool("clipboard", false, "Also copy the answers to the clipboard")

	return cmd
}

func runQuestionnaire(cmd *cobra.Command, app *appState, path string) error {
	questions, err := questionfile.Load(path)
	if err != nil {
		return err
	}
	if !hasTerminal() {
		return errors.New(i18n.T("cli.not_a_terminal"))
	}

	policy, err := session.ParseCancelPolicy(app.cfg.OnCancel)
	if err != nil {
		return err
	}

	// stdout carries the answers, the questions are drawn on stderr
	opts := []tea.ProgramOption{tea.WithOutput(os.Stderr)}
	if app.cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	runner := &session.Runner{
		OnCancel:       policy,
		Ask:            askFunc,
		ProgramOptions: opts,
	}

	logging.Debugf("asking %d questions from %s", len(questions), path)
	answers, err := runner.Run(cmd.Context(), questions)
	if err != nil {
		return err
	}

	names, err := session.Names(questions)
	if err != nil {
		return err
	}
	out, err := encodeAnswers(answers, names, app.cfg.Output)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return err
	}

	if copyToClipboard, _ := cmd.Flags().GetBool("clipboard"); copyToClipboard {
		if err := writeClipboard(string(out)); err != nil {
			logging.Warnf("could not copy answers to the clipboard: %v", err)
		} else {
			cmd.PrintErrln(i18n.T("cli.copied"))
		}
	}
	return nil
}
