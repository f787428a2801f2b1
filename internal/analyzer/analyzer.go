package analyzer

import (
	"github.com/funvibe/ferro/internal/ast"
	"github.com/funvibe/ferro/internal/diagnostics"
	"github.com/funvibe/ferro/internal/outlives"
	"github.com/funvibe/ferro/internal/symbols"
	"github.com/funvibe/ferro/internal/token"
	"github.com/funvibe/ferro/internal/typesystem"
)

// Analyzer runs the well-formedness pass: for every declaration it infers
// the set of outlives obligations the header must carry so that every field
// type is sound without hand-written annotations.
type Analyzer struct {
	table      *symbols.SymbolTable
	inferred   map[string]*outlives.RequiredPredicates
	failed     map[string]bool
	declTokens map[string]token.Token
	errors     []*diagnostics.DiagnosticError
}

func New(table *symbols.SymbolTable) *Analyzer {
	return &Analyzer{
		table:      table,
		inferred:   make(map[string]*outlives.RequiredPredicates),
		failed:     make(map[string]bool),
		declTokens: make(map[string]token.Token),
	}
}

// Infer lowers the program and computes the required predicates of every
// declaration. The returned map is keyed by declaration name; declarations
// that failed (lowering errors or an internal inconsistency) are absent.
//
// Obligations of nested declarations propagate onto their uses, so the
// batch iterates to a fixed point: the sets only ever grow and the material
// they can grow from is finite.
func (a *Analyzer) Infer(program *ast.Program) (map[string]*outlives.RequiredPredicates, []*diagnostics.DiagnosticError) {
	builder := newTypesBuilder(a.table)
	builder.registerHeaders(program)
	builder.lowerFields(program)
	a.errors = append(a.errors, builder.errors...)

	for _, decl := range program.Decls {
		a.declTokens[decl.DeclName()] = decl.GetToken()
	}
	for _, name := range a.table.Names() {
		a.inferred[name] = outlives.NewRequiredPredicates()
	}

	for {
		changed := false
		for _, name := range a.table.Names() {
			if a.failed[name] {
				continue
			}
			def, _ := a.table.Lookup(name)
			required := a.inferred[name]
			before := required.Len()
			if err := a.analyzeDecl(def, required); err != nil {
				// An internal inconsistency poisons only this declaration;
				// the rest of the batch keeps going.
				a.failed[name] = true
				delete(a.inferred, name)
				a.errors = append(a.errors, diagnostics.NewError(
					diagnostics.ErrW001, a.declTokens[name], name, err.Error()))
				continue
			}
			if required.Len() != before {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return a.inferred, a.errors
}

// analyzeDecl walks every field of def, deriving the (argument, outlived
// region) pairs the collector must see.
func (a *Analyzer) analyzeDecl(def *typesystem.AdtDef, required *outlives.RequiredPredicates) error {
	for _, field := range def.Fields {
		if err := a.insertWfObligations(field.Ty, required); err != nil {
			return err
		}
	}
	return nil
}

// insertWfObligations records what must hold for ty to be well-formed.
// A reference &'r T obliges T to outlive 'r; an application of a nominal
// declaration re-imposes that declaration's own inferred obligations,
// substituted onto the actual arguments.
func (a *Analyzer) insertWfObligations(ty typesystem.Type, required *outlives.RequiredPredicates) error {
	switch ty := ty.(type) {
	case typesystem.TRef:
		err := outlives.Collect(typesystem.TypeValue{Ty: ty.Elem}, ty.Region, required)
		if err != nil {
			return err
		}
		return a.insertWfObligations(ty.Elem, required)

	case typesystem.TAdt:
		if inner, ok := a.inferred[ty.Def.Name]; ok {
			subst := typesystem.NewSubst(ty.Def, ty.Args)
			for _, p := range inner.Slice() {
				err := outlives.Collect(subst.Kind(p.Arg), subst.Region(p.Outlived), required)
				if err != nil {
					return err
				}
			}
		}
		for _, arg := range ty.Args {
			if tv, ok := arg.(typesystem.TypeValue); ok {
				if err := a.insertWfObligations(tv.Ty, required); err != nil {
					return err
				}
			}
		}
		return nil

	case typesystem.TTuple:
		for _, elem := range ty.Elems {
			if err := a.insertWfObligations(elem, required); err != nil {
				return err
			}
		}
		return nil

	case typesystem.TFnPtr:
		// References inside the signature still get visited; obligations
		// against the binder's own regions are dropped by the collector's
		// free-region screen.
		for _, param := range ty.Params {
			if err := a.insertWfObligations(param, required); err != nil {
				return err
			}
		}
		if ty.Ret != nil {
			return a.insertWfObligations(ty.Ret, required)
		}
		return nil

	default:
		// TParam, TPrim, TProjection, TInfer: nothing to derive here.
		// They matter only as components of an outlived type, and the
		// collector handles them there.
		return nil
	}
}
