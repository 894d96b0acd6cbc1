package lower

import (
	"strings"

	"github.com/roach88/mapc/internal/model"
	"github.com/roach88/mapc/internal/plan"
)

// buildSourceOperator flattens an AbstractLogicalSource into a Source
// operator: the raw Source's opaque Config absorbs Encoding/Compression/
// NullValues under well-known keys, and the field tree becomes a
// recursive Iterator, mirroring the view's Fields list one level at a
// time (FieldIterable entries recurse into their own sub-iterator,
// FieldExpression entries become a flat projection name).
func buildSourceOperator(a *model.AbstractLogicalSource) plan.Source {
	raw := a.GetSource()
	cfg := make(map[string]string, len(raw.Config)+3)
	for k, v := range raw.Config {
		cfg[k] = v
	}
	if raw.Encoding != "" {
		cfg["encoding"] = raw.Encoding
	}
	if raw.Compression != "" {
		cfg["compression"] = raw.Compression
	}
	if len(raw.NullValues) > 0 {
		cfg["nullValues"] = strings.Join(raw.NullValues, ",")
	}

	var fields []model.RMLField
	if a.Kind == model.AbsSourceLogicalView {
		fields = a.LogicalView.Fields
	}

	it := a.GetIterable()
	root := buildIterator(it.Iterator, formulationString(it.ReferenceFormulation), fields)

	return plan.Source{IOType: raw.Kind.String(), Config: cfg, RootIterator: root}
}

func formulationString(rf *model.ReferenceFormulation) string {
	if rf == nil {
		return ""
	}
	return rf.Kind.String()
}

func buildIterator(expr, refForm string, fields []model.RMLField) plan.Iterator {
	it := plan.Iterator{Expression: expr, ReferenceFormulation: refForm}
	for _, f := range fields {
		if f.Kind == model.FieldIterable {
			it.SubIterators = append(it.SubIterators, buildIterator(f.SubIter, "", f.SubFields))
			continue
		}
		it.Fields = append(it.Fields, f.Name)
	}
	return it
}
