package extract

import (
	"github.com/roach88/mapc/internal/model"
	"github.com/roach88/mapc/internal/rdf"
)

// ExtractExpressionMap reads the Template/Reference/Constant/FunctionExecution
// predicates off node and returns the ExpressionMap they describe. The
// first one present, checked in that order, is used; an error is returned
// only when none of the four is present.
func ExtractExpressionMap(g *rdf.Graph, node rdf.Term) (model.ExpressionMap, error) {
	if v, ok := g.ObjectOfAny(node, predTemplate); ok {
		return model.NewTemplateExpression(v.Value), nil
	}
	if v, ok := g.ObjectOfAny(node, predReference); ok {
		return model.NewReferenceExpression(v.Value), nil
	}
	if v, ok := g.ObjectOfAny(node, predConstant); ok {
		return model.NewConstantExpression(v), nil
	}
	if fnNode, ok := g.ObjectOfAny(node, predFunctionExecution); ok {
		return extractFunctionExecution(g, fnNode)
	}
	return model.ExpressionMap{}, noTermMap(node.String(), "template|reference|constant|functionExecution")
}

func extractFunctionExecution(g *rdf.Graph, node rdf.Term) (model.ExpressionMap, error) {
	fn, ok := g.ObjectOfAny(node, predFunction)
	if !ok {
		return model.ExpressionMap{}, missingRequired(node.String(), "function")
	}

	var inputs []model.InputMap
	for _, in := range g.ObjectsOfAny(node, predInput) {
		param, ok := g.ObjectOfAny(in, predInputParameter)
		if !ok {
			return model.ExpressionMap{}, missingRequired(in.String(), "parameter")
		}
		valueMap, ok := g.ObjectOfAny(in, predInputValueMap)
		if !ok {
			return model.ExpressionMap{}, missingRequired(in.String(), "inputValueMap")
		}
		expr, err := ExtractExpressionMap(g, valueMap)
		if err != nil {
			return model.ExpressionMap{}, err
		}
		inputs = append(inputs, model.InputMap{Parameter: param.Value, Expression: expr})
	}

	var returnNames []string
	for _, rn := range g.ObjectsOfAny(node, predReturnName) {
		returnNames = append(returnNames, rn.Value)
	}

	return model.NewFunctionExecutionExpression(fn.Value, inputs, returnNames), nil
}

// termTypeOf reads an explicit rml:termType/rr:termType declaration off
// node, returning model.TermUnset when absent.
func termTypeOf(g *rdf.Graph, node rdf.Term) model.TermType {
	v, ok := g.ObjectOfAny(node, predTermType)
	if !ok {
		return model.TermUnset
	}
	switch v {
	case termTypeIRI:
		return model.TermIRI
	case termTypeBlank:
		return model.TermBlank
	case termTypeLiteral:
		return model.TermLiteralType
	default:
		return model.TermUnset
	}
}

func extractCommonTermMapInfo(g *rdf.Graph, node rdf.Term) (model.CommonTermMapInfo, error) {
	expr, err := ExtractExpressionMap(g, node)
	if err != nil {
		return model.CommonTermMapInfo{}, err
	}
	targets, err := extractLogicalTargets(g, node)
	if err != nil {
		return model.CommonTermMapInfo{}, err
	}
	return model.CommonTermMapInfo{
		Identifier: node.String(),
		TermType:   termTypeOf(g, node),
		Expression: expr,
		Targets:    targets,
	}, nil
}
