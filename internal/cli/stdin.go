package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/mapc/internal/compile"
)

// NewStdinCommand creates the "stdin" subcommand: compile a Turtle mapping
// document read from standard input.
func NewStdinCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stdin",
		Short:         "compile a Turtle mapping document read from standard input",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdin(opts, cmd)
		},
	}
	return cmd
}

func runStdin(opts *RootOptions, cmd *cobra.Command) error {
	logger := newLogger(opts)

	g, err := compile.FromReader(cmd.InOrStdin(), "")
	if err != nil {
		return translationExitError(err)
	}

	// stdin input has no file stem to derive an output folder from, so the
	// plan is always printed as JSON regardless of --json.
	if err := emitPlan(opts, g, "", cmd.OutOrStdout(), logger); err != nil {
		return WrapExitError(ExitCommandError, "writing plan output", err)
	}
	return nil
}
