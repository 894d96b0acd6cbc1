package planio

import (
	"encoding/json"

	"github.com/roach88/mapc/internal/plan"
)

type jsonNode struct {
	ID       string                 `json:"id"`
	Operator map[string]interface{} `json:"operator"`
}

type jsonEdge struct {
	From      int    `json:"from"`
	To        int    `json:"to"`
	Fragment  string `json:"fragment"`
	Direction string `json:"direction"`
}

type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

// EncodeJSON renders g as an indented, deterministic JSON snapshot. Map
// keys sort alphabetically (encoding/json's standard behavior for
// map[string]T), and struct fields keep their declared order, so the same
// graph always produces byte-identical output.
func EncodeJSON(g *plan.Graph) ([]byte, error) {
	nodes := g.Nodes()
	jg := jsonGraph{
		Nodes: make([]jsonNode, 0, len(nodes)),
		Edges: make([]jsonEdge, 0, len(g.Edges())),
	}
	for _, n := range nodes {
		jg.Nodes = append(jg.Nodes, jsonNode{ID: n.ID, Operator: encodeOperator(n.Operator)})
	}
	for _, e := range g.Edges() {
		jg.Edges = append(jg.Edges, jsonEdge{From: e.From, To: e.To, Fragment: e.Fragment, Direction: e.Direction.String()})
	}
	return json.MarshalIndent(jg, "", "  ")
}

// DecodeJSON parses a snapshot produced by EncodeJSON back into a *plan.Graph.
func DecodeJSON(data []byte) (*plan.Graph, error) {
	var jg jsonGraph
	if err := json.Unmarshal(data, &jg); err != nil {
		return nil, err
	}

	nodes := make([]plan.Node, 0, len(jg.Nodes))
	for _, n := range jg.Nodes {
		kind, _ := n.Operator["kind"].(string)
		op, err := decodeOperator(kind, n.Operator)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, plan.Node{ID: n.ID, Operator: op})
	}

	edges := make([]plan.Edge, 0, len(jg.Edges))
	for _, e := range jg.Edges {
		edges = append(edges, plan.Edge{
			From:      e.From,
			To:        e.To,
			Fragment:  e.Fragment,
			Direction: directionFromString(e.Direction),
		})
	}

	return plan.NewGraphFromParts(nodes, edges), nil
}

func directionFromString(s string) plan.EdgeDirection {
	switch s {
	case "Left":
		return plan.DirLeft
	case "Right":
		return plan.DirRight
	default:
		return plan.DirCenter
	}
}

func joinKindFromString(s string) plan.JoinKind {
	switch s {
	case "Theta":
		return plan.JoinTheta
	case "Cross":
		return plan.JoinCross
	default:
		return plan.JoinNatural
	}
}

// encodeOperator tags op with its OpKind and flattens its fields into a
// plain map, recursing into nested Expr/Iterator trees.
func encodeOperator(op plan.Operator) map[string]interface{} {
	switch v := op.(type) {
	case plan.Source:
		return map[string]interface{}{
			"kind":         "SourceOp",
			"ioType":       v.IOType,
			"config":       stringMapOrEmpty(v.Config),
			"rootIterator": encodeIterator(v.RootIterator),
		}
	case plan.Project:
		return map[string]interface{}{"kind": "ProjectOp", "attributes": stringsOrEmpty(v.Attributes)}
	case plan.Extend:
		pairs := make([]interface{}, 0, len(v.Pairs))
		for _, p := range v.Pairs {
			pairs = append(pairs, map[string]interface{}{"variable": p.Variable, "function": encodeExpr(p.Function)})
		}
		return map[string]interface{}{"kind": "ExtendOp", "pairs": pairs}
	case plan.Rename:
		return map[string]interface{}{"kind": "RenameOp", "pairs": stringMapOrEmpty(v.Pairs)}
	case plan.Fragmenter:
		return map[string]interface{}{"kind": "FragmentOp", "from": v.From, "to": stringsOrEmpty(v.To)}
	case plan.Serializer:
		return map[string]interface{}{"kind": "SerializerOp", "template": v.Template}
	case plan.Target:
		return map[string]interface{}{
			"kind":        "TargetOp",
			"typeIri":     v.TypeIRI,
			"config":      stringMapOrEmpty(v.Config),
			"mode":        v.Mode,
			"format":      v.Format,
			"compression": v.Compression,
		}
	case plan.Join:
		conds := make([]interface{}, 0, len(v.Conditions))
		for _, c := range v.Conditions {
			conds = append(conds, map[string]interface{}{"child": c.Child, "parent": c.Parent})
		}
		return map[string]interface{}{"kind": "JoinOp", "joinKind": v.Kind.String(), "conditions": conds}
	default:
		return map[string]interface{}{"kind": op.OpKind()}
	}
}

func decodeOperator(kind string, raw map[string]interface{}) (plan.Operator, error) {
	switch kind {
	case "SourceOp":
		rootRaw, _ := raw["rootIterator"].(map[string]interface{})
		root, err := decodeIterator(rootRaw)
		if err != nil {
			return nil, err
		}
		ioType, _ := raw["ioType"].(string)
		return plan.Source{IOType: ioType, Config: decodeStringMap(raw["config"]), RootIterator: root}, nil

	case "ProjectOp":
		return plan.Project{Attributes: decodeStringSlice(raw["attributes"])}, nil

	case "ExtendOp":
		var pairs []plan.ExtendPair
		rawPairs, _ := raw["pairs"].([]interface{})
		for _, rp := range rawPairs {
			pm, _ := rp.(map[string]interface{})
			varName, _ := pm["variable"].(string)
			fnRaw, _ := pm["function"].(map[string]interface{})
			fn, err := decodeExpr(fnRaw)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, plan.ExtendPair{Variable: varName, Function: fn})
		}
		return plan.Extend{Pairs: pairs}, nil

	case "RenameOp":
		return plan.Rename{Pairs: decodeStringMap(raw["pairs"])}, nil

	case "FragmentOp":
		from, _ := raw["from"].(string)
		return plan.Fragmenter{From: from, To: decodeStringSlice(raw["to"])}, nil

	case "SerializerOp":
		tmpl, _ := raw["template"].(string)
		return plan.Serializer{Template: tmpl}, nil

	case "TargetOp":
		typeIRI, _ := raw["typeIri"].(string)
		mode, _ := raw["mode"].(string)
		format, _ := raw["format"].(string)
		compression, _ := raw["compression"].(string)
		return plan.Target{TypeIRI: typeIRI, Config: decodeStringMap(raw["config"]), Mode: mode, Format: format, Compression: compression}, nil

	case "JoinOp":
		joinKindStr, _ := raw["joinKind"].(string)
		var conds []plan.JoinAttributePair
		rawConds, _ := raw["conditions"].([]interface{})
		for _, rc := range rawConds {
			cm, _ := rc.(map[string]interface{})
			child, _ := cm["child"].(string)
			parent, _ := cm["parent"].(string)
			conds = append(conds, plan.JoinAttributePair{Child: child, Parent: parent})
		}
		return plan.Join{Kind: joinKindFromString(joinKindStr), Conditions: conds}, nil

	default:
		return nil, &Error{Code: CodeUnknownKind, Kind: kind, Message: "unrecognized operator kind"}
	}
}

// encodeExpr tags e with its ExprKind and flattens its fields, recursing
// through every sub-expression. Returns nil for a nil Expr (Literal's
// optional Datatype/Lang).
func encodeExpr(e plan.Expr) map[string]interface{} {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case plan.Concatenate:
		return map[string]interface{}{"kind": "Concatenate", "left": encodeExpr(v.Left), "right": encodeExpr(v.Right)}
	case plan.UriEncode:
		return map[string]interface{}{"kind": "UriEncode", "inner": encodeExpr(v.Inner)}
	case plan.Reference:
		return map[string]interface{}{"kind": "Reference", "name": v.Name}
	case plan.Constant:
		return map[string]interface{}{"kind": "Constant", "value": v.Value}
	case plan.FunctionExecution:
		params := make([]interface{}, 0, len(v.Params))
		for _, p := range v.Params {
			params = append(params, map[string]interface{}{"parameter": p.Parameter, "value": encodeExpr(p.Value)})
		}
		return map[string]interface{}{
			"kind":        "FunctionExecution",
			"function":    v.Function,
			"params":      params,
			"returnNames": stringsOrEmpty(v.ReturnNames),
		}
	case plan.Iri:
		return map[string]interface{}{"kind": "Iri", "baseIri": v.BaseIRI, "inner": encodeExpr(v.Inner)}
	case plan.BlankNode:
		return map[string]interface{}{"kind": "BlankNode", "inner": encodeExpr(v.Inner)}
	case plan.Literal:
		m := map[string]interface{}{"kind": "Literal", "inner": encodeExpr(v.Inner)}
		if v.Datatype != nil {
			m["datatype"] = encodeExpr(v.Datatype)
		}
		if v.Lang != nil {
			m["lang"] = encodeExpr(v.Lang)
		}
		return m
	default:
		return nil
	}
}

func decodeExpr(raw map[string]interface{}) (plan.Expr, error) {
	if raw == nil {
		return nil, nil
	}
	kind, _ := raw["kind"].(string)
	switch kind {
	case "Concatenate":
		left, err := decodeExprField(raw, "left")
		if err != nil {
			return nil, err
		}
		right, err := decodeExprField(raw, "right")
		if err != nil {
			return nil, err
		}
		return plan.Concatenate{Left: left, Right: right}, nil

	case "UriEncode":
		inner, err := decodeExprField(raw, "inner")
		if err != nil {
			return nil, err
		}
		return plan.UriEncode{Inner: inner}, nil

	case "Reference":
		name, _ := raw["name"].(string)
		return plan.Reference{Name: name}, nil

	case "Constant":
		value, _ := raw["value"].(string)
		return plan.Constant{Value: value}, nil

	case "FunctionExecution":
		function, _ := raw["function"].(string)
		var params []plan.FnOParam
		rawParams, _ := raw["params"].([]interface{})
		for _, rp := range rawParams {
			pm, _ := rp.(map[string]interface{})
			parameter, _ := pm["parameter"].(string)
			valRaw, _ := pm["value"].(map[string]interface{})
			val, err := decodeExpr(valRaw)
			if err != nil {
				return nil, err
			}
			params = append(params, plan.FnOParam{Parameter: parameter, Value: val})
		}
		return plan.FunctionExecution{
			Function:    function,
			Params:      params,
			ReturnNames: decodeStringSlice(raw["returnNames"]),
		}, nil

	case "Iri":
		baseIRI, _ := raw["baseIri"].(string)
		inner, err := decodeExprField(raw, "inner")
		if err != nil {
			return nil, err
		}
		return plan.Iri{BaseIRI: baseIRI, Inner: inner}, nil

	case "BlankNode":
		inner, err := decodeExprField(raw, "inner")
		if err != nil {
			return nil, err
		}
		return plan.BlankNode{Inner: inner}, nil

	case "Literal":
		inner, err := decodeExprField(raw, "inner")
		if err != nil {
			return nil, err
		}
		lit := plan.Literal{Inner: inner}
		if dtRaw, ok := raw["datatype"].(map[string]interface{}); ok {
			dt, err := decodeExpr(dtRaw)
			if err != nil {
				return nil, err
			}
			lit.Datatype = dt
		}
		if langRaw, ok := raw["lang"].(map[string]interface{}); ok {
			lang, err := decodeExpr(langRaw)
			if err != nil {
				return nil, err
			}
			lit.Lang = lang
		}
		return lit, nil

	default:
		return nil, &Error{Code: CodeUnknownKind, Kind: kind, Message: "unrecognized expr kind"}
	}
}

func decodeExprField(raw map[string]interface{}, field string) (plan.Expr, error) {
	m, ok := raw[field].(map[string]interface{})
	if !ok {
		return nil, &Error{Code: CodeMalformed, Kind: "Expr", Message: "missing field " + field}
	}
	return decodeExpr(m)
}

func encodeIterator(it plan.Iterator) map[string]interface{} {
	subs := make([]interface{}, 0, len(it.SubIterators))
	for _, s := range it.SubIterators {
		subs = append(subs, encodeIterator(s))
	}
	return map[string]interface{}{
		"expression":           it.Expression,
		"referenceFormulation": it.ReferenceFormulation,
		"fields":               stringsOrEmpty(it.Fields),
		"subIterators":         subs,
	}
}

func decodeIterator(raw map[string]interface{}) (plan.Iterator, error) {
	it := plan.Iterator{}
	it.Expression, _ = raw["expression"].(string)
	it.ReferenceFormulation, _ = raw["referenceFormulation"].(string)
	it.Fields = decodeStringSlice(raw["fields"])

	rawSubs, _ := raw["subIterators"].([]interface{})
	for _, s := range rawSubs {
		sm, _ := s.(map[string]interface{})
		sub, err := decodeIterator(sm)
		if err != nil {
			return it, err
		}
		it.SubIterators = append(it.SubIterators, sub)
	}
	return it, nil
}

func stringMapOrEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func decodeStringMap(raw interface{}) map[string]string {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func decodeStringSlice(raw interface{}) []string {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
