package rdf

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ParseFile reads and parses a Turtle document from disk. Path inputs must
// carry the `.ttl` extension; any other extension is a BadExtension
// ParseError.
func ParseFile(path string) (*ParseResult, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".ttl" {
		return nil, &DocumentParseError{
			Kind:    ParseErrorBadExtension,
			Path:    path,
			Message: "unsupported file extension " + ext + ": only .ttl is accepted",
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DocumentParseError{Kind: ParseErrorIO, Path: path, Message: err.Error()}
	}

	result, err := ParseString(string(data))
	if err != nil {
		if de, ok := err.(*DocumentParseError); ok {
			de.Path = path
			return nil, de
		}
		return nil, err
	}
	return result, nil
}

// ParseReader parses a Turtle document from an arbitrary reader, used for
// the CLI's stdin subcommand.
func ParseReader(r io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DocumentParseError{Kind: ParseErrorIO, Message: err.Error()}
	}
	return ParseString(string(data))
}
