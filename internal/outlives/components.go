package outlives

import "github.com/funvibe/ferro/internal/typesystem"

// Component is one atomic structural piece of a decomposed type: the unit
// the collector decides about.
type Component interface {
	componentNode()
}

// RegionComponent is a region appearing in the type, e.g. 'b in &'b u32.
type RegionComponent struct {
	Region typesystem.Region
}

// ParamComponent is a bare type parameter, e.g. U in Vec<U>.
type ParamComponent struct {
	Param typesystem.TParam
}

// ProjectionComponent is an unresolved associated-type projection whose
// definition mentions no bound regions.
type ProjectionComponent struct {
	Projection typesystem.TProjection
}

// EscapingProjectionComponent is a projection whose definition involves a
// region bound by an enclosing function-type binder.
type EscapingProjectionComponent struct {
	Projection typesystem.TProjection
}

// UnresolvedInferenceComponent marks an inference variable found inside the
// type. Never legal at declaration time.
type UnresolvedInferenceComponent struct {
	Infer typesystem.TInfer
}

func (RegionComponent) componentNode()              {}
func (ParamComponent) componentNode()               {}
func (ProjectionComponent) componentNode()          {}
func (EscapingProjectionComponent) componentNode()  {}
func (UnresolvedInferenceComponent) componentNode() {}

// Components decomposes a type into its ordered sequence of atomic
// components. The decomposition is deterministic and total over
// declaration-time types: same type, same sequence, always.
func Components(ty typesystem.Type) []Component {
	var out []Component
	pushComponents(ty, &out)
	return out
}

func pushComponents(ty typesystem.Type, out *[]Component) {
	switch t := ty.(type) {
	case typesystem.TParam:
		*out = append(*out, ParamComponent{Param: t})

	case typesystem.TRef:
		// The region comes first, then whatever the referent contributes.
		// This is what lets &'a &'b u32 surface 'b.
		*out = append(*out, RegionComponent{Region: t.Region})
		pushComponents(t.Elem, out)

	case typesystem.TProjection:
		if projectionHasEscapingRegions(t) {
			*out = append(*out, EscapingProjectionComponent{Projection: t})
		} else {
			*out = append(*out, ProjectionComponent{Projection: t})
		}

	case typesystem.TAdt:
		for _, arg := range t.Args {
			switch arg := arg.(type) {
			case typesystem.TypeValue:
				pushComponents(arg.Ty, out)
			case typesystem.RegionValue:
				*out = append(*out, RegionComponent{Region: arg.Region})
			}
		}

	case typesystem.TFnPtr:
		// Late-bound regions in the signature are emitted as ordinary
		// region components; the collector's free-region screen drops them.
		for _, p := range t.Params {
			pushComponents(p, out)
		}
		if t.Ret != nil {
			pushComponents(t.Ret, out)
		}

	case typesystem.TTuple:
		for _, e := range t.Elems {
			pushComponents(e, out)
		}

	case typesystem.TPrim:
		// no structure

	case typesystem.TInfer:
		*out = append(*out, UnresolvedInferenceComponent{Infer: t})
	}
}

// projectionHasEscapingRegions reports whether the projection mentions a
// late-bound region bound by a binder enclosing the projection itself.
// Such a projection cannot be constrained on a header. Regions bound by
// function types contained inside the projection do not escape it:
// <for<'c> fn(&'c u32) as Trait>::Item is a plain projection.
func projectionHasEscapingRegions(p typesystem.TProjection) bool {
	if typeHasEscapingRegions(p.Trait.SelfType, 0) {
		return true
	}
	for _, arg := range p.Trait.Args {
		if kindHasEscapingRegions(arg, 0) {
			return true
		}
	}
	return false
}

// regionEscapes reports whether r is late-bound with a de Bruijn depth that
// reaches past the binders crossed since the projection's top level.
func regionEscapes(r typesystem.Region, binders int) bool {
	late, ok := r.(typesystem.ReLateBound)
	return ok && late.Depth >= binders
}

func kindHasEscapingRegions(k typesystem.Kind, binders int) bool {
	switch k := k.(type) {
	case typesystem.TypeValue:
		return typeHasEscapingRegions(k.Ty, binders)
	case typesystem.RegionValue:
		return regionEscapes(k.Region, binders)
	}
	return false
}

func typeHasEscapingRegions(ty typesystem.Type, binders int) bool {
	switch t := ty.(type) {
	case typesystem.TRef:
		if regionEscapes(t.Region, binders) {
			return true
		}
		return typeHasEscapingRegions(t.Elem, binders)
	case typesystem.TAdt:
		for _, arg := range t.Args {
			if kindHasEscapingRegions(arg, binders) {
				return true
			}
		}
	case typesystem.TProjection:
		if typeHasEscapingRegions(t.Trait.SelfType, binders) {
			return true
		}
		for _, arg := range t.Trait.Args {
			if kindHasEscapingRegions(arg, binders) {
				return true
			}
		}
	case typesystem.TFnPtr:
		// Every function type opens a binder frame during lowering, even
		// one without for<> lifetimes, so crossing it shifts the depth at
		// which a region counts as escaping.
		for _, p := range t.Params {
			if typeHasEscapingRegions(p, binders+1) {
				return true
			}
		}
		if t.Ret != nil {
			return typeHasEscapingRegions(t.Ret, binders+1)
		}
	case typesystem.TTuple:
		for _, e := range t.Elems {
			if typeHasEscapingRegions(e, binders) {
				return true
			}
		}
	}
	return false
}
