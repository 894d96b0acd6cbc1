package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/mapc/internal/compile"
)

// RootOptions holds the flags shared by every subcommand.
type RootOptions struct {
	Debug              int
	JSON               bool
	OutputFolderSuffix string
}

// NewRootCommand creates the root "mapc" command: a thin cobra driver over
// internal/compile's parse→resolve→lower pipeline. It never executes a
// plan, only produces one.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "mapc",
		Short: "mapc compiles RDF mapping documents to operator plans",
		Long: `mapc reads a declarative RDF-mapping document (Turtle-encoded) and
compiles it into a directed acyclic operator plan: parse, resolve, lower.
It never executes the plan or produces RDF output.`,
	}

	cmd.PersistentFlags().CountVarP(&opts.Debug, "debug", "d", "increase logging verbosity (repeatable)")
	cmd.PersistentFlags().BoolVarP(&opts.JSON, "json", "j", false, "print the plan as JSON on stdout instead of writing plan files to disk")
	cmd.PersistentFlags().StringVarP(&opts.OutputFolderSuffix, "outputFolderSuffix", "o", "_plan", "suffix appended to a source file's stem to name its output folder")

	cmd.AddCommand(NewFileCommand(opts))
	cmd.AddCommand(NewFolderCommand(opts))
	cmd.AddCommand(NewStdinCommand(opts))

	return cmd
}

// newLogger builds a stderr-bound logger whose level is gated by how many
// times -d/--debug was repeated: 0 warnings-only, 1 info, 2+ debug. Every
// invocation is tagged with a fresh run id, so log lines from concurrent
// or back-to-back invocations (notably folder mode's per-file loop) can be
// told apart in aggregated output.
func newLogger(opts *RootOptions) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case opts.Debug >= 2:
		level = slog.LevelDebug
	case opts.Debug == 1:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return logger.With(slog.String("run_id", uuid.Must(uuid.NewV7()).String()))
}

// translationExitError maps a compile.TranslationError (or any other
// pipeline failure) onto the CLI's exit-code contract: malformed input at
// any stage is a command error, not a test/validation failure.
func translationExitError(err error) error {
	var te *compile.TranslationError
	if errors.As(err, &te) {
		return WrapExitError(ExitCommandError, fmt.Sprintf("%s failed", te.Stage), te.Err)
	}
	return WrapExitError(ExitCommandError, "compilation failed", err)
}
