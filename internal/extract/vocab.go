// Package extract builds a *model.Document out of a parsed *rdf.Graph: one
// extractor function per mapping-model construct, following the
// shortcut-vs-nested-map collection rules of the mapping vocabulary.
package extract

import "github.com/roach88/mapc/internal/rdf"

// Predicate IRIs. Most constructs have both a current ("rml:") and a
// legacy ("rr:") form; ObjectOfAny tries the current form first, falling
// back to the legacy one, and ObjectsOfAny collects the values under both,
// so mappings written against either vocabulary generation resolve
// identically.
const (
	rml = "http://w3id.org/rml/"
	rr  = "http://www.w3.org/ns/r2rml#"
)

var (
	predTriplesMap     = rdf.IRI(rml + "TriplesMap")
	predLogicalSource  = []rdf.Term{rdf.IRI(rml + "logicalSource"), rdf.IRI(rr + "logicalTable")}
	predSubjectMap     = []rdf.Term{rdf.IRI(rml + "subjectMap"), rdf.IRI(rr + "subjectMap")}
	predSubject        = []rdf.Term{rdf.IRI(rml + "subject"), rdf.IRI(rr + "subject")}
	predPredicateObjectMap = []rdf.Term{rdf.IRI(rml + "predicateObjectMap"), rdf.IRI(rr + "predicateObjectMap")}
	predPredicateMap   = []rdf.Term{rdf.IRI(rml + "predicateMap"), rdf.IRI(rr + "predicateMap")}
	predPredicate      = []rdf.Term{rdf.IRI(rml + "predicate"), rdf.IRI(rr + "predicate")}
	predObjectMap      = []rdf.Term{rdf.IRI(rml + "objectMap"), rdf.IRI(rr + "objectMap")}
	predObject         = []rdf.Term{rdf.IRI(rml + "object"), rdf.IRI(rr + "object")}
	predGraphMap       = []rdf.Term{rdf.IRI(rml + "graphMap"), rdf.IRI(rr + "graphMap")}
	predGraph          = []rdf.Term{rdf.IRI(rml + "graph"), rdf.IRI(rr + "graph")}
	predClass          = []rdf.Term{rdf.IRI(rml + "class"), rdf.IRI(rr + "class")}
	predTermType       = []rdf.Term{rdf.IRI(rml + "termType"), rdf.IRI(rr + "termType")}
	predTemplate       = []rdf.Term{rdf.IRI(rml + "template"), rdf.IRI(rr + "template")}
	predReference      = []rdf.Term{rdf.IRI(rml + "reference"), rdf.IRI(rr + "column")}
	predConstant       = []rdf.Term{rdf.IRI(rml + "constant"), rdf.IRI(rr + "constant")}
	predLanguage       = []rdf.Term{rdf.IRI(rml + "language"), rdf.IRI(rr + "language")}
	predLanguageMap    = []rdf.Term{rdf.IRI(rml + "languageMap")}
	predDatatype       = []rdf.Term{rdf.IRI(rml + "datatype"), rdf.IRI(rr + "datatype")}
	predDatatypeMap    = []rdf.Term{rdf.IRI(rml + "datatypeMap")}

	predRefObjectMap   = []rdf.Term{rdf.IRI(rml + "refObjectMap"), rdf.IRI(rr + "parentTriplesMap")}
	predParentTM       = []rdf.Term{rdf.IRI(rml + "parentTriplesMap"), rdf.IRI(rr + "parentTriplesMap")}
	predJoinCondition  = []rdf.Term{rdf.IRI(rml + "joinCondition"), rdf.IRI(rr + "joinCondition")}
	predParent         = []rdf.Term{rdf.IRI(rml + "parent"), rdf.IRI(rr + "parent")}
	predChild          = []rdf.Term{rdf.IRI(rml + "child"), rdf.IRI(rr + "child")}

	predSource         = []rdf.Term{rdf.IRI(rml + "source")}
	predIterator       = []rdf.Term{rdf.IRI(rml + "iterator")}
	predReferenceFormulation = []rdf.Term{rdf.IRI(rml + "referenceFormulation")}
	predViewOn         = []rdf.Term{rdf.IRI(rml + "viewOn")}
	predField          = []rdf.Term{rdf.IRI(rml + "field")}
	predFieldName      = []rdf.Term{rdf.IRI(rml + "name")}
	predEncoding       = []rdf.Term{rdf.IRI(rml + "encoding")}
	predCompression    = []rdf.Term{rdf.IRI(rml + "compression")}
	predNullValue      = []rdf.Term{rdf.IRI(rml + "null")}

	predLogicalTarget  = []rdf.Term{rdf.IRI(rml + "logicalTarget"), rdf.IRI(rr + "target")}
	predTarget         = []rdf.Term{rdf.IRI(rml + "target")}
	predSerialization  = []rdf.Term{rdf.IRI(rml + "serialization")}
	predMode           = []rdf.Term{rdf.IRI(rml + "mode")}

	predFunctionExecution = []rdf.Term{rdf.IRI(rml + "functionExecution"), rdf.IRI(rml + "FunctionExecution")}
	predFunction       = []rdf.Term{rdf.IRI(rml + "function")}
	predInput          = []rdf.Term{rdf.IRI(rml + "input")}
	predInputParameter = []rdf.Term{rdf.IRI(rml + "parameter")}
	predInputValueMap  = []rdf.Term{rdf.IRI(rml + "inputValueMap")}
	predReturnName     = []rdf.Term{rdf.IRI(rml + "returnName")}

	termTypeIRI     = rdf.IRI(rml + "IRI")
	termTypeBlank   = rdf.IRI(rml + "BlankNode")
	termTypeLiteral = rdf.IRI(rml + "Literal")
)
