package model

// ReferenceFormulationKind identifies the language used to address values
// inside one iteration of a logical source.
type ReferenceFormulationKind int

const (
	RefFormCSVRows ReferenceFormulationKind = iota
	RefFormJSONPath
	RefFormXPath
	RefFormSQLQuery
	RefFormSPARQL
	RefFormCSS3
	RefFormCustom
)

func (k ReferenceFormulationKind) String() string {
	switch k {
	case RefFormCSVRows:
		return "CSVRows"
	case RefFormJSONPath:
		return "JSONPath"
	case RefFormXPath:
		return "XPath"
	case RefFormSQLQuery:
		return "SQLQuery"
	case RefFormSPARQL:
		return "SPARQL"
	case RefFormCSS3:
		return "CSS3"
	case RefFormCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// ReferenceFormulation is the tagged union of value-addressing languages a
// logical source's iterator may declare. Custom formulations carry their
// own opaque metadata subgraph (already flattened into Config).
type ReferenceFormulation struct {
	Kind   ReferenceFormulationKind
	Config map[string]string // Custom only
}

// RMLIterable carries an optional iterator expression and an optional
// reference formulation for a logical source or view.
type RMLIterable struct {
	Iterator              string // empty if unset
	ReferenceFormulation  *ReferenceFormulation
}

// SourceKind identifies which concrete kind of data source a Source
// describes: file path, CSV-with-schema, relational database, TCP socket,
// or Kafka topic.
type SourceKind int

const (
	SourceFile SourceKind = iota
	SourceCSVW
	SourceRelational
	SourceTCP
	SourceKafka
	SourceUnknown
)

func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "File"
	case SourceCSVW:
		return "CSVW"
	case SourceRelational:
		return "Relational"
	case SourceTCP:
		return "TCP"
	case SourceKafka:
		return "Kafka"
	default:
		return "Unknown"
	}
}

// Source is a SourceKind plus opaque metadata, optional encoding and
// compression, and a set of strings treated as SQL-NULL.
type Source struct {
	Kind        SourceKind
	TypeIRI     string
	Config      map[string]string // flattened opaque metadata subgraph
	Encoding    string            // empty = unset
	Compression string            // empty = unset
	NullValues  []string
}

// RMLFieldKind identifies whether a view field is an iterable (nested
// sub-iterator) or a plain expression.
type RMLFieldKind int

const (
	FieldIterable RMLFieldKind = iota
	FieldExpression
)

// RMLField is one declared field of a LogicalView: a name, a kind, and
// (for Iterable fields) nested sub-fields.
type RMLField struct {
	Name       string
	Kind       RMLFieldKind
	SubIter    string          // FieldIterable only
	Expression ExpressionMap   // FieldExpression only: Reference/Constant/Template
	SubFields  []RMLField      // FieldIterable only
}

// FieldFromReference constructs a plain Reference-kind field from an
// attribute path, the shape the resolver synthesizes during
// logical-source→logical-view promotion.
func FieldFromReference(attr string) RMLField {
	return RMLField{
		Name:       attr,
		Kind:       FieldExpression,
		Expression: NewReferenceExpression(attr),
	}
}

// LogicalSource is a raw Source plus its RMLIterable.
type LogicalSource struct {
	Identifier string
	Iterable   RMLIterable
	Source     Source
}

// ViewJoinKind identifies the relationship a LogicalView's join to a
// parent view represents.
type ViewJoinKind int

const (
	ViewJoinNatural ViewJoinKind = iota
	ViewJoinConditional
)

// ViewJoin is one typed join a LogicalView declares to a parent view.
type ViewJoin struct {
	Kind       ViewJoinKind
	ParentView *AbstractLogicalSource
	Conditions []JoinCondition
}

// StructAnnotation records a structural hint a LogicalView carries about
// its computed iterable (e.g. nesting depth); opaque beyond its key/value
// pairs, preserved for downstream consumers.
type StructAnnotation struct {
	Key   string
	Value string
}

// LogicalView derives its iterable from another AbstractLogicalSource, and
// declares a field list, optional structural annotations, and zero or more
// typed joins to parent views.
type LogicalView struct {
	Identifier         string
	ViewOn             *AbstractLogicalSource
	Fields             []RMLField
	StructAnnotations  []StructAnnotation
	Joins              []ViewJoin
}

// GetIterable returns the iterable of the source this view wraps; the
// view's own field list is not folded into it.
func (lv *LogicalView) GetIterable() RMLIterable {
	return lv.ViewOn.GetIterable()
}

// GetSource walks to the ultimate raw Source underneath nested views.
func (lv *LogicalView) GetSource() Source {
	return lv.ViewOn.GetSource()
}

// AbstractLogicalSourceKind discriminates the two variants an
// AbstractLogicalSource may hold.
type AbstractLogicalSourceKind int

const (
	AbsSourceLogicalSource AbstractLogicalSourceKind = iota
	AbsSourceLogicalView
)

// AbstractLogicalSource carries an RMLIterable and either a LogicalSource
// or a LogicalView.
type AbstractLogicalSource struct {
	Kind          AbstractLogicalSourceKind
	Iterable      RMLIterable
	LogicalSource *LogicalSource
	LogicalView   *LogicalView
}

// GetIterable returns the iterable governing this source.
func (a *AbstractLogicalSource) GetIterable() RMLIterable {
	if a.Kind == AbsSourceLogicalView {
		return a.LogicalView.GetIterable()
	}
	return a.Iterable
}

// GetSource returns the ultimate raw Source underneath this abstract
// source, recursing through any LogicalView wrapping.
func (a *AbstractLogicalSource) GetSource() Source {
	if a.Kind == AbsSourceLogicalView {
		return a.LogicalView.GetSource()
	}
	return a.LogicalSource.Source
}

// Identifier returns the identifier of the concrete LogicalSource or
// LogicalView this abstract source wraps.
func (a *AbstractLogicalSource) Identifier() string {
	if a.Kind == AbsSourceLogicalView {
		return a.LogicalView.Identifier
	}
	return a.LogicalSource.Identifier
}
