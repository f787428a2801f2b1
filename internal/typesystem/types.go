package typesystem

import (
	"strconv"
	"strings"
)

// Type is the interface for all semantic types.
type Type interface {
	typeNode()
	String() string
}

// TParam is a reference to a type parameter of the enclosing declaration,
// e.g. T in `struct Foo<T>`.
type TParam struct {
	Index int // position among the declaration's type parameters
	Name  string
}

// TRef is a reference type &'r T / &'r mut T.
type TRef struct {
	Region Region
	Mut    bool
	Elem   Type
}

// TAdt is an application of a nominal declaration to generic arguments,
// e.g. Vec<U> or Foo<'a, T>. Args follow the declaration's parameter order:
// lifetimes first, then types.
type TAdt struct {
	Def  *AdtDef
	Args []Kind
}

// TraitRef names a trait applied to a self type, e.g. `T as Iterator`.
type TraitRef struct {
	Name     string
	SelfType Type
	Args     []Kind // trait generic arguments beyond the self type
}

// TProjection is an associated-type projection `<T as Iterator>::Item`,
// not yet normalized to a concrete type.
type TProjection struct {
	Trait TraitRef
	Item  string
}

// TFnPtr is a function-pointer type, optionally carrying its own
// higher-ranked region binder: `for<'b> fn(&'b T) -> U`.
type TFnPtr struct {
	Binders []string // names of the late-bound regions introduced here
	Params  []Type
	Ret     Type // nil for no return type
}

// TTuple is a tuple type (A, B); the empty tuple is the unit type.
type TTuple struct {
	Elems []Type
}

// TPrim is a primitive scalar type such as u32 or bool.
type TPrim struct {
	Name string
}

// TInfer is a type inference variable. It never legally occurs in a
// declaration-time type; the outlives pass treats it as an internal
// inconsistency.
type TInfer struct {
	ID int
}

func (TParam) typeNode()      {}
func (TRef) typeNode()        {}
func (TAdt) typeNode()        {}
func (TProjection) typeNode() {}
func (TFnPtr) typeNode()      {}
func (TTuple) typeNode()      {}
func (TPrim) typeNode()       {}
func (TInfer) typeNode()      {}

func (t TParam) String() string { return t.Name }

func (t TRef) String() string {
	var sb strings.Builder
	sb.WriteString("&")
	sb.WriteString(t.Region.String())
	sb.WriteString(" ")
	if t.Mut {
		sb.WriteString("mut ")
	}
	sb.WriteString(t.Elem.String())
	return sb.String()
}

func (t TAdt) String() string {
	if len(t.Args) == 0 {
		return t.Def.Name
	}
	parts := make([]string, len(t.Args))
	for i, arg := range t.Args {
		parts[i] = arg.String()
	}
	return t.Def.Name + "<" + strings.Join(parts, ", ") + ">"
}

func (t TProjection) String() string {
	return "<" + t.Trait.SelfType.String() + " as " + t.Trait.Name + ">::" + t.Item
}

func (t TFnPtr) String() string {
	var sb strings.Builder
	if len(t.Binders) > 0 {
		sb.WriteString("for<")
		for i, name := range t.Binders {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("'" + name)
		}
		sb.WriteString("> ")
	}
	sb.WriteString("fn(")
	for i, p := range t.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	if t.Ret != nil {
		sb.WriteString(" -> " + t.Ret.String())
	}
	return sb.String()
}

func (t TTuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t TPrim) String() string { return t.Name }

func (t TInfer) String() string { return "?" + strconv.Itoa(t.ID) }

// AdtField is one field of a lowered declaration. Enum variant payloads are
// flattened into synthetic fields: well-formedness does not care which
// variant a type came from.
type AdtField struct {
	Name string
	Ty   Type
}

// AdtDef is the lowered form of a struct or enum declaration.
type AdtDef struct {
	Name       string
	IsEnum     bool
	Lifetimes  []string // declared lifetime parameter names, in order
	TypeParams []string // declared type parameter names, in order
	Fields     []AdtField
}

// Arity is the total number of generic parameters.
func (d *AdtDef) Arity() int {
	return len(d.Lifetimes) + len(d.TypeParams)
}
