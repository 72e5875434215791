// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"io"
	"os"
	"strconv"

	"nt/internal/action"
	"nt/internal/clock"
	"nt/internal/config"
	"nt/internal/logger"
	"nt/internal/notes"
	"nt/internal/ui"
	"nt/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X nt/cmd/cli.version=...".
var version = "dev"

const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

var (
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	dimColor     = color.New(color.Faint)
)

// App bundles the process resources a single invocation works with.
type App struct {
	Env       config.Env
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	StdinTTY  bool
	StdoutTTY bool
	Clock     clock.Clock

	// Prompt reads one line from a terminal. When nil, or when either end is
	// not a terminal, interactive mode reads a plain line from Stdin.
	Prompt func(in io.Reader, out io.Writer) (string, bool, error)
}

// NewApp wires an App to the real process environment.
func NewApp() *App {
	return &App{
		Env:       config.EnvFromOS(),
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		StdinTTY:  util.IsTerminal(os.Stdin),
		StdoutTTY: util.IsTerminal(os.Stdout),
		Clock:     clock.System{},
		Prompt:    ui.ReadLine,
	}
}

// exitError carries the process exit code for a failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

type options struct {
	print          int
	interactive    bool
	showConfigPath bool
	configFile     string
	verbose        bool
}

func newRootCmd(app *App) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "nt [NOTE...]",
		Short: "Simple timestamped note taker",
		Long: `nt appends timestamped lines of text to a single note file and prints the most recent ones.

With note text, the text is stored as one entry. Without arguments, nt reads
notes from piped stdin (one entry per non-blank line) or, at a terminal, asks
for a single line. The note file and timestamp format are read from
<config dir>/nt/nt.toml (keys: note_file, datetime_format).`,
		Example: "  nt picked up the dry cleaning\n  nt -p\n  nt --print 3\n  git log --oneline -3 | nt\n  nt -i",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		// Errors and exit codes are reported by Execute.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(app.Env.StateDir, opts.verbose, app.Stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := action.Request{
				Print: action.PrintOption{
					Set:   cmd.Flags().Changed("print"),
					Count: &opts.print,
				},
				Interactive:     opts.interactive,
				ShowConfigPath:  opts.showConfigPath,
				ConfigFile:      cmd.Flags().Changed("config-file"),
				Note:            args,
				StdinIsTerminal: app.StdinTTY,
			}
			act, err := action.Resolve(req)
			if err != nil {
				return usageError(err)
			}
			logger.Debug("Resolved action", "action", act.Kind.String())
			return app.run(act, opts)
		},
	}

	flags := cmd.Flags()
	// Everything after the first note word is note text, flags included.
	flags.SetInterspersed(false)
	flags.IntVarP(&opts.print, "print", "p", action.DefaultPrintCount, "print the last N notes")
	flags.Lookup("print").NoOptDefVal = strconv.Itoa(action.DefaultPrintCount)
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "enter interactive single-line mode (press Enter to submit)")
	flags.BoolVar(&opts.showConfigPath, "config-path", false, "print the default config file path and exit")
	flags.StringVar(&opts.configFile, "config-file", "", "load configuration from `PATH` instead of the default location")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging on stderr")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(err)
	})
	cmd.SetIn(app.Stdin)
	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)
	return cmd
}

// Execute runs one invocation with args (without the program name) and
// returns the process exit code.
func (a *App) Execute(args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(normalizeArgs(args))
	defer logger.Close()

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	code := exitCodeFor(err)
	logger.Error("Command failed", "err", err, "exit_code", code)
	errorColor.Fprintf(a.Stderr, "Error: %v\n", err)
	if code == exitUsage {
		dimColor.Fprintf(a.Stderr, "Run '%s --help' for usage.\n", cmd.Name())
	}
	return code
}

func exitCodeFor(err error) int {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *action.UsageError
	if errors.As(err, &usageErr) || errors.Is(err, notes.ErrEmptyInput) {
		return exitUsage
	}
	return exitIO
}

// RunCLI executes the command line of the current process and exits.
func RunCLI() {
	os.Exit(NewApp().Execute(os.Args[1:]))
}
