package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/linesift/internal/config"
	"github.com/dshills/linesift/internal/matcher"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess        = 0
	ExitStreamError    = 1
	ExitUsageError     = 2
	ExitReferenceError = 3
	ExitBuildError     = 4
)

const description = "Any line coming in from stdin that is also present in the given file will be passed to stdout."

type options struct {
	configFile string
	verbose    bool
}

func newRootCmd(exitCode *int) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "linesift [flags] <file>",
		Short:   "Filter stdin by the lines of a reference file",
		Long:    description + "\n\nA stdin line is passed when it contains any non-empty line of <file> as a literal substring.",
		Version: version,
		Args:    cobra.ExactArgs(1),
		// stdout carries filtered lines only; errors are printed by Execute.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if opts.verbose && !flags.Changed(config.KeyLogLevel) {
				if err := flags.Set(config.KeyLogLevel, "debug"); err != nil {
					return err
				}
			}
			cfg, err := config.Load(args[0], opts.configFile, flags)
			if err != nil {
				return err
			}
			*exitCode = runFilter(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.SetVersionTemplate("linesift version {{.Version}}\n")

	f := cmd.Flags()
	f.BoolP(config.KeyNegate, "n", false, "If set, then only those lines in stdin that are *not* in the given file are passed to stdout")
	f.StringP(config.KeyEngine, "e", string(matcher.EngineRegexp), "Matching engine (regexp, ahocorasick)")
	f.Bool(config.KeyBuffered, false, "Buffer stdout instead of flushing after every line")
	f.String(config.KeyLogLevel, "warn", "Diagnostic log level (debug, info, warn, error)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Shorthand for --log-level=debug")
	f.StringVar(&opts.configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/linesift/config.json)")

	return cmd
}

// Run executes the root command against the process streams and returns an
// exit code.
func Run() int {
	return Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Execute runs linesift with the given arguments and streams.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	exitCode := ExitSuccess
	cmd := newRootCmd(&exitCode)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\nRun 'linesift --help' for usage.\n", err)
		return ExitUsageError
	}
	return exitCode
}
