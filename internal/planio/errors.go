// Package planio serializes and deserializes an *plan.Graph: a canonical
// JSON snapshot (round-trip stable) and a Graphviz DOT rendering for
// visual inspection. Both formats are self-describing — a "kind" tag on
// every operator and function-tree node — so decoding never needs the
// producing document alongside the snapshot.
package planio

import "fmt"

// ErrorCode identifies a decode failure.
type ErrorCode string

const (
	// CodeUnknownKind marks a "kind" discriminator the decoder doesn't
	// recognize — either a corrupted snapshot or one produced by a newer
	// version of this package.
	CodeUnknownKind ErrorCode = "P100"
	// CodeMalformed marks a snapshot missing a field its kind requires.
	CodeMalformed ErrorCode = "P101"
)

// Error is planio's decode error value.
type Error struct {
	Code    ErrorCode
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Kind, e.Message)
}
