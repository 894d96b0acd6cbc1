package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/mapc/internal/compile"
)

// NewFolderCommand creates the "folder" subcommand: compile every mapping
// document under a directory.
func NewFolderCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder <dir>",
		Short: "compile every Turtle mapping document under a directory",
		Long: `Walks <dir> up to 4 levels deep, compiling every *.ttl file it finds.
A .mapc.yaml manifest at the directory root overrides the default filter
with explicit include/exclude glob patterns. Each source file gets its own
output folder.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFolder(opts, args[0], cmd)
		},
	}
	return cmd
}

func runFolder(opts *RootOptions, dir string, cmd *cobra.Command) error {
	logger := newLogger(opts)

	files, err := FindMappingFiles(dir)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("scanning %s", dir), err)
	}
	if len(files) == 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("no mapping documents found under %s", dir))
	}

	var failed int
	for _, f := range files {
		g, err := compile.FromFile(f)
		if err != nil {
			logger.Error("compile failed", slog.String("file", f), slog.Any("error", err))
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", f, err)
			failed++
			continue
		}
		if err := emitPlan(opts, g, f, cmd.OutOrStdout(), logger); err != nil {
			logger.Error("writing plan failed", slog.String("file", f), slog.Any("error", err))
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", f, err)
			failed++
		}
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d mapping document(s) failed", failed, len(files)))
	}
	return nil
}
