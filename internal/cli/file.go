package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/mapc/internal/compile"
)

// NewFileCommand creates the "file" subcommand: compile a single Turtle
// mapping document.
func NewFileCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "file <path>",
		Short:         "compile a single Turtle mapping document",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(opts, args[0], cmd)
		},
	}
	return cmd
}

func runFile(opts *RootOptions, path string, cmd *cobra.Command) error {
	logger := newLogger(opts)
	logger.Debug("compiling file", slog.String("path", path))

	g, err := compile.FromFile(path)
	if err != nil {
		return translationExitError(err)
	}

	if err := emitPlan(opts, g, path, cmd.OutOrStdout(), logger); err != nil {
		return WrapExitError(ExitCommandError, "writing plan output", err)
	}
	return nil
}
