package rdf

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseResult carries the graph produced by parsing a mapping document plus
// the default base IRI recovered from the first @base directive.
type ParseResult struct {
	Graph   *Graph
	BaseIRI string // empty if no @base directive was present
}

// ParseErrorKind enumerates the ways Turtle parsing can fail.
type ParseErrorKind int

const (
	ParseErrorIO ParseErrorKind = iota
	ParseErrorSyntax
	ParseErrorBadExtension
)

// DocumentParseError is the error type the Turtle front end returns.
type DocumentParseError struct {
	Kind    ParseErrorKind
	Path    string
	Line    int
	Message string
}

func (e *DocumentParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ParseString parses an in-memory Turtle document. This is the entry point
// used for both file and stdin inputs once extension validation (if any)
// has happened at the caller.
func ParseString(src string) (*ParseResult, error) {
	p := &parser{
		lex:      newLexer(src),
		prefixes: map[string]string{},
		graph:    NewGraph(),
	}
	if err := p.advance(); err != nil {
		return nil, toDocumentParseError(err)
	}
	if err := p.parseDocument(); err != nil {
		return nil, toDocumentParseError(err)
	}
	return &ParseResult{Graph: p.graph, BaseIRI: p.firstBase}, nil
}

func toDocumentParseError(err error) error {
	if err == nil {
		return nil
	}
	if le, ok := err.(*lexError); ok {
		return &DocumentParseError{Kind: ParseErrorSyntax, Line: le.line, Message: le.message}
	}
	if pe, ok := err.(*parseSyntaxError); ok {
		return &DocumentParseError{Kind: ParseErrorSyntax, Line: pe.line, Message: pe.message}
	}
	return &DocumentParseError{Kind: ParseErrorSyntax, Message: err.Error()}
}

type parseSyntaxError struct {
	line    int
	message string
}

func (e *parseSyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.line, e.message)
}

type parser struct {
	lex      *lexer
	cur      token
	prefixes map[string]string
	baseIRI  string
	firstBase string
	graph    *Graph
	blankSeq int
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) errf(format string, args ...any) error {
	return &parseSyntaxError{line: p.cur.line, message: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(k tokenKind, what string) error {
	if p.cur.kind != k {
		return p.errf("expected %s", what)
	}
	return p.advance()
}

func (p *parser) parseDocument() error {
	for p.cur.kind != tokEOF {
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseStatement() error {
	switch p.cur.kind {
	case tokPrefixDirective:
		return p.parsePrefixDirective()
	case tokBaseDirective:
		return p.parseBaseDirective()
	default:
		return p.parseTriples()
	}
}

func (p *parser) parsePrefixDirective() error {
	if err := p.advance(); err != nil {
		return err
	}
	// Accept either "@prefix ex: <iri> ." or "PREFIX ex: <iri>" (no dot).
	if p.cur.kind != tokPrefixedName {
		return p.errf("expected prefix label after @prefix")
	}
	label := strings.TrimSuffix(p.cur.text, ":")
	if err := p.advance(); err != nil {
		return err
	}
	if p.cur.kind != tokIRIRef {
		return p.errf("expected IRI after prefix label")
	}
	iri := p.resolveIRI(p.cur.text)
	p.prefixes[label] = iri
	if err := p.advance(); err != nil {
		return err
	}
	if p.cur.kind == tokDot {
		return p.advance()
	}
	return nil
}

func (p *parser) parseBaseDirective() error {
	if err := p.advance(); err != nil {
		return err
	}
	if p.cur.kind != tokIRIRef {
		return p.errf("expected IRI after @base")
	}
	p.baseIRI = p.resolveIRI(p.cur.text)
	if p.firstBase == "" {
		p.firstBase = p.baseIRI
	}
	if err := p.advance(); err != nil {
		return err
	}
	if p.cur.kind == tokDot {
		return p.advance()
	}
	return nil
}

func (p *parser) resolveIRI(raw string) string {
	if p.baseIRI == "" {
		return raw
	}
	base, err := url.Parse(p.baseIRI)
	if err != nil {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return base.ResolveReference(ref).String()
}

func (p *parser) parseTriples() error {
	subj, err := p.parseSubject()
	if err != nil {
		return err
	}
	if err := p.parsePredicateObjectList(subj); err != nil {
		return err
	}
	if p.cur.kind != tokDot {
		return p.errf("expected '.' to terminate triples")
	}
	return p.advance()
}

func (p *parser) parseSubject() (Term, error) {
	switch p.cur.kind {
	case tokIRIRef:
		t := IRI(p.resolveIRI(p.cur.text))
		return t, p.advance()
	case tokPrefixedName:
		t := IRI(p.expandPrefixedName(p.cur.text))
		return t, p.advance()
	case tokBlankNodeLabel:
		t := Blank(p.cur.text)
		return t, p.advance()
	case tokAnonBlankNode:
		t := Blank(p.freshBlank())
		return t, p.advance()
	case tokOpenBracket:
		return p.parseBlankNodePropertyList()
	default:
		return Term{}, p.errf("expected subject term")
	}
}

func (p *parser) expandPrefixedName(text string) string {
	idx := strings.IndexByte(text, ':')
	prefix, local := text[:idx], text[idx+1:]
	base, ok := p.prefixes[prefix]
	if !ok {
		return text
	}
	return base + local
}

func (p *parser) freshBlank() string {
	p.blankSeq++
	return fmt.Sprintf("anon%d", p.blankSeq)
}

// parseBlankNodePropertyList parses `[ ... ]` as a subject or object: a
// fresh blank node that owns the predicate-object list inside the
// brackets, emitted into the graph.
func (p *parser) parseBlankNodePropertyList() (Term, error) {
	if err := p.advance(); err != nil { // consume '['
		return Term{}, err
	}
	bnode := Blank(p.freshBlank())
	if err := p.parsePredicateObjectList(bnode); err != nil {
		return Term{}, err
	}
	if p.cur.kind != tokCloseBracket {
		return Term{}, p.errf("expected ']' to close blank node property list")
	}
	return bnode, p.advance()
}

func (p *parser) parsePredicateObjectList(subj Term) error {
	for {
		pred, err := p.parsePredicate()
		if err != nil {
			return err
		}
		if err := p.parseObjectList(subj, pred); err != nil {
			return err
		}
		if p.cur.kind != tokSemicolon {
			return nil
		}
		if err := p.advance(); err != nil {
			return err
		}
		// Trailing ';' with no further predicate is legal.
		if p.cur.kind == tokDot || p.cur.kind == tokCloseBracket {
			return nil
		}
	}
}

func (p *parser) parsePredicate() (Term, error) {
	switch p.cur.kind {
	case tokA:
		t := IRI(rdfTypeIRI)
		return t, p.advance()
	case tokIRIRef:
		t := IRI(p.resolveIRI(p.cur.text))
		return t, p.advance()
	case tokPrefixedName:
		t := IRI(p.expandPrefixedName(p.cur.text))
		return t, p.advance()
	default:
		return Term{}, p.errf("expected predicate term")
	}
}

const rdfTypeIRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

func (p *parser) parseObjectList(subj, pred Term) error {
	for {
		obj, err := p.parseObject()
		if err != nil {
			return err
		}
		p.graph.Add(Triple{Subject: subj, Predicate: pred, Object: obj})
		if p.cur.kind != tokComma {
			return nil
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
}

func (p *parser) parseObject() (Term, error) {
	switch p.cur.kind {
	case tokIRIRef:
		t := IRI(p.resolveIRI(p.cur.text))
		return t, p.advance()
	case tokPrefixedName:
		t := IRI(p.expandPrefixedName(p.cur.text))
		return t, p.advance()
	case tokBlankNodeLabel:
		t := Blank(p.cur.text)
		return t, p.advance()
	case tokAnonBlankNode:
		t := Blank(p.freshBlank())
		return t, p.advance()
	case tokOpenBracket:
		return p.parseBlankNodePropertyList()
	case tokOpenParen:
		return p.parseCollection()
	case tokString:
		return p.parseLiteral()
	case tokNumber:
		return p.parseNumericLiteral()
	case tokTrue:
		t := TypedLiteral("true", xsdBoolean)
		return t, p.advance()
	case tokFalse:
		t := TypedLiteral("false", xsdBoolean)
		return t, p.advance()
	default:
		return Term{}, p.errf("expected object term")
	}
}

const (
	xsdInteger = "http://www.w3.org/2001/XMLSchema#integer"
	xsdDecimal = "http://www.w3.org/2001/XMLSchema#decimal"
	xsdDouble  = "http://www.w3.org/2001/XMLSchema#double"
	xsdBoolean = "http://www.w3.org/2001/XMLSchema#boolean"
	xsdString  = "http://www.w3.org/2001/XMLSchema#string"
)

func (p *parser) parseNumericLiteral() (Term, error) {
	text := p.cur.text
	dt := xsdInteger
	if strings.ContainsAny(text, ".") {
		dt = xsdDecimal
	}
	if strings.ContainsAny(text, "eE") {
		dt = xsdDouble
	}
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return Term{}, p.errf("malformed numeric literal %q", text)
	}
	t := TypedLiteral(text, dt)
	return t, p.advance()
}

func (p *parser) parseLiteral() (Term, error) {
	lexical := p.cur.text
	if err := p.advance(); err != nil {
		return Term{}, err
	}
	switch p.cur.kind {
	case tokLangTag:
		lang := p.cur.text
		if err := p.advance(); err != nil {
			return Term{}, err
		}
		return LangLiteral(lexical, lang), nil
	case tokDatatypeMarker:
		if err := p.advance(); err != nil {
			return Term{}, err
		}
		var dt string
		switch p.cur.kind {
		case tokIRIRef:
			dt = p.resolveIRI(p.cur.text)
		case tokPrefixedName:
			dt = p.expandPrefixedName(p.cur.text)
		default:
			return Term{}, p.errf("expected datatype IRI after '^^'")
		}
		if err := p.advance(); err != nil {
			return Term{}, err
		}
		return TypedLiteral(lexical, dt), nil
	default:
		return PlainLiteral(lexical), nil
	}
}

// parseCollection parses `( a b c )` as an rdf:first/rdf:rest chain rooted
// at a fresh blank node, terminated by rdf:nil. Empty collections are the
// rdf:nil IRI itself.
func (p *parser) parseCollection() (Term, error) {
	if err := p.advance(); err != nil { // consume '('
		return Term{}, err
	}
	var items []Term
	for p.cur.kind != tokCloseParen {
		item, err := p.parseObject()
		if err != nil {
			return Term{}, err
		}
		items = append(items, item)
	}
	if err := p.advance(); err != nil { // consume ')'
		return Term{}, err
	}

	const rdfNil = "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"
	const rdfFirst = "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"
	const rdfRest = "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"

	if len(items) == 0 {
		return IRI(rdfNil), nil
	}

	head := Blank(p.freshBlank())
	cur := head
	for i, item := range items {
		p.graph.Add(Triple{Subject: cur, Predicate: IRI(rdfFirst), Object: item})
		if i == len(items)-1 {
			p.graph.Add(Triple{Subject: cur, Predicate: IRI(rdfRest), Object: IRI(rdfNil)})
			break
		}
		next := Blank(p.freshBlank())
		p.graph.Add(Triple{Subject: cur, Predicate: IRI(rdfRest), Object: next})
		cur = next
	}
	return head, nil
}
