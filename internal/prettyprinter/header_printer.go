package prettyprinter

import (
	"strings"

	"github.com/funvibe/ferro/internal/outlives"
	"github.com/funvibe/ferro/internal/typesystem"
)

// --- Header Printer (Output looks like source code) ---

// PrintHeader renders a declaration header with its inferred obligations
// appended as a where clause, e.g.
//
//	struct Foo<'a, 'b, U> where 'b: 'a, U: 'a
//
// The clause order follows the predicate set's canonical order, so output
// is reproducible across runs.
func PrintHeader(def *typesystem.AdtDef, required *outlives.RequiredPredicates) string {
	var sb strings.Builder
	if def.IsEnum {
		sb.WriteString("enum ")
	} else {
		sb.WriteString("struct ")
	}
	sb.WriteString(def.Name)

	if def.Arity() > 0 {
		sb.WriteString("<")
		first := true
		for _, name := range def.Lifetimes {
			if !first {
				sb.WriteString(", ")
			}
			sb.WriteString("'" + name)
			first = false
		}
		for _, name := range def.TypeParams {
			if !first {
				sb.WriteString(", ")
			}
			sb.WriteString(name)
			first = false
		}
		sb.WriteString(">")
	}

	if required != nil && required.Len() > 0 {
		sb.WriteString(" where ")
		for i, p := range required.Slice() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.String())
		}
	}

	return sb.String()
}
