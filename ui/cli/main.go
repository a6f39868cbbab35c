// Copyright (c) 2026 Keymaster Team
// Interrogator - terminal questionnaire engine
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/interrogator/buildvars"
	"github.com/toeirei/interrogator/internal/config"
	"github.com/toeirei/interrogator/internal/i18n"
	"github.com/toeirei/interrogator/internal/logging"
)

const modulePath = "github.com/toeirei/interrogator"

var version = buildvars.VersionOrDefault("dev") // this will be set by the linker
var gitCommit = "dev"                            // set at build time with the short commit SHA
var buildDate = ""                               // set at build time (RFC3339)

// appState is shared by the commands of one root command.
type appState struct {
	cfgFile   string
	cfg       config.Config
	logCloser io.Closer
}

func (a *appState) setup(cmd *cobra.Command) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	i18n.Init(a.cfg.Language)
	logging.SetDebug(a.cfg.Debug)
	if a.cfg.LogFile != "" {
		closer, err := logging.OpenFile(a.cfg.LogFile)
		if err != nil {
			return err
		}
		a.logCloser = closer
	}
	logging.Debugf("config loaded: %+v", a.cfg)
	return nil
}

func (a *appState) teardown() error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	logging.SetOutput(os.Stderr)
	return err
}

// Execute runs the CLI entrypoint. Interrupt signals cancel the running
// questionnaire.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	app := &appState{}

	cmd := &cobra.Command{
		Use:   "interrogator",
		Short: "Interrogator asks questions in the terminal and prints the answers.",
		Long: `Interrogator reads a questionnaire from a YAML file, asks every question
interactively in the terminal and prints the collected answers as YAML or JSON.

Question types: input, string, password, text, path, selectone, selectmany
and repassword.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.teardown()
		},
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file")
	cmd.PersistentFlags().StringP("language", "l", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")

	cmd.AddCommand(
		newRunCmd(app),
		newTypesCmd(),
		newConfigCmd(app),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	composite := v
	if c != "" && c != v {
		composite += " (" + c + ")"
	}
	if d != "" {
		composite += " built: " + d
	}
	return composite
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// When built as a dependency the main module carries no version.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
