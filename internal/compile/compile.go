package compile

import (
	"io"

	"github.com/roach88/mapc/internal/extract"
	"github.com/roach88/mapc/internal/lower"
	"github.com/roach88/mapc/internal/plan"
	"github.com/roach88/mapc/internal/rdf"
	"github.com/roach88/mapc/internal/resolve"
)

// FromFile runs the full pipeline over a Turtle mapping document on disk.
func FromFile(path string) (*plan.Graph, error) {
	result, err := rdf.ParseFile(path)
	if err != nil {
		return nil, &TranslationError{Stage: StageParse, Path: path, Err: err}
	}
	return fromParseResult(result, path)
}

// FromReader runs the full pipeline over a Turtle mapping document read
// from an arbitrary stream (the CLI's stdin subcommand). path is used only
// for error annotation and may be empty.
func FromReader(r io.Reader, path string) (*plan.Graph, error) {
	result, err := rdf.ParseReader(r)
	if err != nil {
		return nil, &TranslationError{Stage: StageParse, Path: path, Err: err}
	}
	return fromParseResult(result, path)
}

// FromString runs the full pipeline over an in-memory Turtle source string.
func FromString(src, path string) (*plan.Graph, error) {
	result, err := rdf.ParseString(src)
	if err != nil {
		return nil, &TranslationError{Stage: StageParse, Path: path, Err: err}
	}
	return fromParseResult(result, path)
}

func fromParseResult(result *rdf.ParseResult, path string) (*plan.Graph, error) {
	doc, err := extract.ExtractDocument(result.Graph, result.BaseIRI)
	if err != nil {
		return nil, &TranslationError{Stage: StageExtract, Path: path, Err: err}
	}

	ix, err := resolve.Resolve(doc)
	if err != nil {
		return nil, &TranslationError{Stage: StageResolve, Path: path, Err: err}
	}

	g, err := lower.New(ix).Lower()
	if err != nil {
		return nil, &TranslationError{Stage: StageLower, Path: path, Err: err}
	}
	return g, nil
}
