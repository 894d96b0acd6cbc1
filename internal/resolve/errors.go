// Package resolve validates and normalizes an extracted *model.Document:
// base-IRI injection, term-type defaulting, cyclic-view/join detection,
// logical-source→logical-view promotion, and stable variable-name
// assignment — everything the lowerer needs to assume has already been
// checked.
package resolve

import "fmt"

// ErrorCode identifies a resolver failure, in the same terse numbered-code
// style used for validation errors elsewhere in the compiler.
type ErrorCode string

const (
	CodeCyclicView       ErrorCode = "R100" // logical view forms a cycle through viewOn
	CodeCyclicJoin       ErrorCode = "R101" // ref-object maps form a cycle through parentTriplesMap
	CodeUnknownParent    ErrorCode = "R102" // ref-object map names a parent that doesn't exist
	CodeNoSubjectTermType ErrorCode = "R103" // subject map term type resolved to Literal (invalid)
	CodeMalformedJoin    ErrorCode = "R104" // join condition references an attribute the parent view can't provide
)

// Error is the resolver's error value: a code, the offending identifier,
// and a message, optionally carrying a cycle path.
type Error struct {
	Code    ErrorCode
	Subject string
	Message string
	Path    []string
}

func (e *Error) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Code, e.Subject, e.Message, e.Path)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Subject, e.Message)
}
