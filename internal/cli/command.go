package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirsize/internal/dirsize"
)

// ErrUsage is returned when the command line does not name exactly one directory.
var ErrUsage = errors.New("invalid usage")

// CLI represents the command-line interface.
type CLI struct {
	version string
	args    []string
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{
		version: version,
		args:    os.Args[1:],
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

func usage() string {
	return heredoc.Doc(`
		The target directory must be specified as the only argument of the application.

		Usage:

			dirsize <directory>

		Prints the apparent size of every file below the directory, sorted by path,
		followed by the total. Content reachable through several hard links is
		counted once. Symbolic links are counted as links and never followed.
	`)
}

// exactlyOneDirectory accepts a single, non-empty positional argument.
func exactlyOneDirectory(_ *cobra.Command, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return fmt.Errorf("%w: expected one directory, got %d arguments", ErrUsage, len(args))
	}

	return nil
}

func (c CLI) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dirsize <directory>",
		Short:         "Report the apparent disk usage of a directory tree",
		Args:          exactlyOneDirectory,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := dirsize.Options{
				Path:   args[0],
				Logger: newLogger(c.stderr, c.version),
			}

			return logic(options, cmd.OutOrStdout())
		},
	}

	// cobra reads os.Args when given nil.
	args := c.args
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)
	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})
	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), usage())
	})

	return cmd
}

// Execute runs the CLI. On ErrUsage the usage message has already been
// printed to standard output.
func (c CLI) Execute() error {
	err := c.command().Execute()
	if errors.Is(err, ErrUsage) {
		fmt.Fprint(c.stdout, usage())
	}

	return err
}
