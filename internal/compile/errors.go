// Package compile wires the front end together: parse a Turtle-encoded
// mapping document, extract its declarative model, resolve it against
// itself, and lower the result into an operator plan graph. It is the
// single entry point the CLI and any embedder call.
package compile

import "fmt"

// StageErrorKind names which stage of the pipeline a TranslationError
// originated in, so callers (notably the CLI's exit-code mapping) don't
// need to type-switch on three different packages' error types.
type StageErrorKind string

const (
	StageParse    StageErrorKind = "parse"
	StageExtract  StageErrorKind = "extract"
	StageResolve  StageErrorKind = "resolve"
	StageLower    StageErrorKind = "lower"
)

// TranslationError wraps a failure from any pipeline stage, optionally
// naming the file it came from.
type TranslationError struct {
	Stage StageErrorKind
	Path  string
	Err   error
}

func (e *TranslationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }
