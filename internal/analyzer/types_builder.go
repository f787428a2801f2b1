package analyzer

import (
	"fmt"

	"github.com/funvibe/ferro/internal/ast"
	"github.com/funvibe/ferro/internal/config"
	"github.com/funvibe/ferro/internal/diagnostics"
	"github.com/funvibe/ferro/internal/symbols"
	"github.com/funvibe/ferro/internal/typesystem"
)

// typesBuilder lowers AST declarations to semantic types. Lowering is two
// phase: first every header is registered so declarations can reference each
// other in any order, then field types are resolved.
type typesBuilder struct {
	table  *symbols.SymbolTable
	defs   map[ast.Decl]*typesystem.AdtDef
	errors []*diagnostics.DiagnosticError
}

func newTypesBuilder(table *symbols.SymbolTable) *typesBuilder {
	return &typesBuilder{
		table: table,
		defs:  make(map[ast.Decl]*typesystem.AdtDef),
	}
}

func (b *typesBuilder) addError(err *diagnostics.DiagnosticError) {
	b.errors = append(b.errors, err)
}

// registerHeaders defines an AdtDef for every declaration, fields left
// empty.
func (b *typesBuilder) registerHeaders(program *ast.Program) {
	for _, decl := range program.Decls {
		def := &typesystem.AdtDef{Name: decl.DeclName()}
		var generics *ast.Generics
		switch decl := decl.(type) {
		case *ast.StructDecl:
			generics = decl.Generics
		case *ast.EnumDecl:
			def.IsEnum = true
			generics = decl.Generics
		}
		if generics != nil {
			for _, lt := range generics.Lifetimes {
				def.Lifetimes = append(def.Lifetimes, lt.Name)
			}
			for _, tp := range generics.Types {
				def.TypeParams = append(def.TypeParams, tp.Name)
			}
		}
		if err := b.table.Define(def); err != nil {
			b.addError(diagnostics.NewError(diagnostics.ErrW002, decl.GetToken(), err.Error()))
			continue
		}
		b.defs[decl] = def
	}
}

// lowerFields resolves every field type of every registered declaration.
// Enum variant payloads become synthetic fields: well-formedness does not
// care which variant a type came from.
func (b *typesBuilder) lowerFields(program *ast.Program) {
	for _, decl := range program.Decls {
		def, ok := b.defs[decl]
		if !ok {
			continue
		}
		env := newDeclEnv(def)
		switch decl := decl.(type) {
		case *ast.StructDecl:
			for _, field := range decl.Fields {
				if ty, ok := b.lowerType(env, field.Ty); ok {
					def.Fields = append(def.Fields, typesystem.AdtField{Name: field.Name, Ty: ty})
				}
			}
		case *ast.EnumDecl:
			for _, variant := range decl.Variants {
				for i, payload := range variant.Payload {
					if ty, ok := b.lowerType(env, payload); ok {
						name := fmt.Sprintf("%s.%d", variant.Name, i)
						def.Fields = append(def.Fields, typesystem.AdtField{Name: name, Ty: ty})
					}
				}
			}
		}
	}
}

// declEnv is the name-resolution scope while lowering one declaration's
// fields. binders is the stack of fn-pointer binder scopes, innermost last.
type declEnv struct {
	def        *typesystem.AdtDef
	lifetimes  map[string]int
	typeParams map[string]int
	binders    []map[string]int
}

func newDeclEnv(def *typesystem.AdtDef) *declEnv {
	env := &declEnv{
		def:        def,
		lifetimes:  make(map[string]int),
		typeParams: make(map[string]int),
	}
	for i, name := range def.Lifetimes {
		env.lifetimes[name] = i
	}
	for i, name := range def.TypeParams {
		env.typeParams[name] = i
	}
	return env
}

func (env *declEnv) pushBinder(names []string) {
	scope := make(map[string]int, len(names))
	for i, name := range names {
		scope[name] = i
	}
	env.binders = append(env.binders, scope)
}

func (env *declEnv) popBinder() {
	env.binders = env.binders[:len(env.binders)-1]
}

// resolveLifetime maps a lifetime use to a region. Binder scopes shadow the
// declaration's own parameters; depth counts outward from the innermost
// binder.
func (env *declEnv) resolveLifetime(name string) (typesystem.Region, bool) {
	if name == config.StaticLifetimeName {
		return typesystem.ReStatic{}, true
	}
	for depth := 0; depth < len(env.binders); depth++ {
		scope := env.binders[len(env.binders)-1-depth]
		if index, ok := scope[name]; ok {
			return typesystem.ReLateBound{Depth: depth, Index: index, Name: name}, true
		}
	}
	if index, ok := env.lifetimes[name]; ok {
		return typesystem.ReEarlyBound{Index: index, Name: name}, true
	}
	return nil, false
}

func (b *typesBuilder) lowerType(env *declEnv, expr ast.TypeExpr) (typesystem.Type, bool) {
	switch expr := expr.(type) {
	case *ast.RefType:
		if expr.Lifetime == nil {
			b.addError(diagnostics.NewError(diagnostics.ErrW005, expr.GetToken(),
				"references in declarations must name a lifetime"))
			return nil, false
		}
		region, ok := env.resolveLifetime(expr.Lifetime.Name)
		if !ok {
			b.addError(diagnostics.NewError(diagnostics.ErrW005, expr.Lifetime.GetToken(),
				"unbound lifetime "+expr.Lifetime.TokenLiteral()))
			return nil, false
		}
		elem, ok := b.lowerType(env, expr.Elem)
		if !ok {
			return nil, false
		}
		return typesystem.TRef{Region: region, Mut: expr.Mut, Elem: elem}, true

	case *ast.NamedType:
		return b.lowerNamedType(env, expr)

	case *ast.TupleType:
		elems := make([]typesystem.Type, 0, len(expr.Elems))
		for _, e := range expr.Elems {
			elem, ok := b.lowerType(env, e)
			if !ok {
				return nil, false
			}
			elems = append(elems, elem)
		}
		return typesystem.TTuple{Elems: elems}, true

	case *ast.FnPtrType:
		names := make([]string, len(expr.Binders))
		for i, binder := range expr.Binders {
			names[i] = binder.Name
		}
		env.pushBinder(names)
		defer env.popBinder()

		params := make([]typesystem.Type, 0, len(expr.Params))
		for _, p := range expr.Params {
			param, ok := b.lowerType(env, p)
			if !ok {
				return nil, false
			}
			params = append(params, param)
		}
		var ret typesystem.Type
		if expr.Ret != nil {
			var ok bool
			ret, ok = b.lowerType(env, expr.Ret)
			if !ok {
				return nil, false
			}
		}
		return typesystem.TFnPtr{Binders: names, Params: params, Ret: ret}, true

	case *ast.ProjectionType:
		selfType, ok := b.lowerType(env, expr.SelfType)
		if !ok {
			return nil, false
		}
		trait := typesystem.TraitRef{Name: expr.Trait.Name, SelfType: selfType}
		for _, arg := range expr.Trait.Args {
			kind, ok := b.lowerGenericArg(env, arg)
			if !ok {
				return nil, false
			}
			trait.Args = append(trait.Args, kind)
		}
		return typesystem.TProjection{Trait: trait, Item: expr.Item}, true

	case *ast.InferType:
		b.addError(diagnostics.NewError(diagnostics.ErrW006, expr.GetToken(),
			"`_` is not allowed in a declaration"))
		return nil, false

	default:
		b.addError(diagnostics.NewError(diagnostics.ErrW003, expr.GetToken(),
			"unsupported type expression"))
		return nil, false
	}
}

func (b *typesBuilder) lowerNamedType(env *declEnv, expr *ast.NamedType) (typesystem.Type, bool) {
	if index, ok := env.typeParams[expr.Name]; ok {
		if len(expr.Args) > 0 {
			b.addError(diagnostics.NewError(diagnostics.ErrW004, expr.GetToken(),
				"type parameter "+expr.Name+" takes no generic arguments"))
			return nil, false
		}
		return typesystem.TParam{Index: index, Name: expr.Name}, true
	}

	if config.PrimitiveTypes[expr.Name] {
		if len(expr.Args) > 0 {
			b.addError(diagnostics.NewError(diagnostics.ErrW004, expr.GetToken(),
				"primitive type "+expr.Name+" takes no generic arguments"))
			return nil, false
		}
		return typesystem.TPrim{Name: expr.Name}, true
	}

	def, ok := b.table.Lookup(expr.Name)
	if !ok {
		b.addError(diagnostics.NewError(diagnostics.ErrW003, expr.GetToken(),
			"unknown type "+expr.Name))
		return nil, false
	}
	if len(expr.Args) != def.Arity() {
		b.addError(diagnostics.NewError(diagnostics.ErrW004, expr.GetToken(), fmt.Sprintf(
			"%s expects %d generic arguments, got %d", def.Name, def.Arity(), len(expr.Args))))
		return nil, false
	}

	args := make([]typesystem.Kind, 0, len(expr.Args))
	for i, arg := range expr.Args {
		kind, ok := b.lowerGenericArg(env, arg)
		if !ok {
			return nil, false
		}
		_, isRegion := kind.(typesystem.RegionValue)
		if wantRegion := i < len(def.Lifetimes); wantRegion != isRegion {
			b.addError(diagnostics.NewError(diagnostics.ErrW004, arg.GetToken(), fmt.Sprintf(
				"argument %d of %s has the wrong kind", i+1, def.Name)))
			return nil, false
		}
		args = append(args, kind)
	}
	return typesystem.TAdt{Def: def, Args: args}, true
}

func (b *typesBuilder) lowerGenericArg(env *declEnv, arg ast.GenericArg) (typesystem.Kind, bool) {
	if lt, ok := arg.(*ast.LifetimeRef); ok {
		region, ok := env.resolveLifetime(lt.Name)
		if !ok {
			b.addError(diagnostics.NewError(diagnostics.ErrW005, lt.GetToken(),
				"unbound lifetime "+lt.TokenLiteral()))
			return nil, false
		}
		return typesystem.RegionValue{Region: region}, true
	}
	expr, ok := arg.(ast.TypeExpr)
	if !ok {
		b.addError(diagnostics.NewError(diagnostics.ErrW003, arg.GetToken(),
			"unsupported generic argument"))
		return nil, false
	}
	ty, ok := b.lowerType(env, expr)
	if !ok {
		return nil, false
	}
	return typesystem.TypeValue{Ty: ty}, true
}
