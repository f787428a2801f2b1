package typesystem

// Subst maps a declaration's own generic parameters onto the arguments of a
// particular application of it. Used when the obligations inferred for a
// nested declaration are propagated onto the fields of an outer one.
type Subst struct {
	Def  *AdtDef
	Args []Kind
}

// NewSubst builds the substitution for an application of def to args.
// Args follow the declaration's parameter order: lifetimes, then types.
func NewSubst(def *AdtDef, args []Kind) Subst {
	return Subst{Def: def, Args: args}
}

// Region replaces an early-bound parameter of the substituted declaration
// with the corresponding region argument. Every other region passes through
// unchanged.
func (s Subst) Region(r Region) Region {
	eb, ok := r.(ReEarlyBound)
	if !ok {
		return r
	}
	if eb.Index < 0 || eb.Index >= len(s.Args) {
		return r
	}
	if rv, ok := s.Args[eb.Index].(RegionValue); ok {
		return rv.Region
	}
	return r
}

// Type replaces type parameters of the substituted declaration and recurses
// structurally through every other shape.
func (s Subst) Type(t Type) Type {
	switch t := t.(type) {
	case TParam:
		i := len(s.Def.Lifetimes) + t.Index
		if i < 0 || i >= len(s.Args) {
			return t
		}
		if tv, ok := s.Args[i].(TypeValue); ok {
			return tv.Ty
		}
		return t
	case TRef:
		return TRef{Region: s.Region(t.Region), Mut: t.Mut, Elem: s.Type(t.Elem)}
	case TAdt:
		args := make([]Kind, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.Kind(arg)
		}
		return TAdt{Def: t.Def, Args: args}
	case TProjection:
		trait := TraitRef{Name: t.Trait.Name, SelfType: s.Type(t.Trait.SelfType)}
		if len(t.Trait.Args) > 0 {
			trait.Args = make([]Kind, len(t.Trait.Args))
			for i, arg := range t.Trait.Args {
				trait.Args[i] = s.Kind(arg)
			}
		}
		return TProjection{Trait: trait, Item: t.Item}
	case TFnPtr:
		params := make([]Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = s.Type(p)
		}
		var ret Type
		if t.Ret != nil {
			ret = s.Type(t.Ret)
		}
		return TFnPtr{Binders: t.Binders, Params: params, Ret: ret}
	case TTuple:
		elems := make([]Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = s.Type(e)
		}
		return TTuple{Elems: elems}
	default:
		// TPrim, TInfer: nothing to substitute
		return t
	}
}

// Kind applies the substitution to either side of the argument sum.
func (s Subst) Kind(k Kind) Kind {
	switch k := k.(type) {
	case TypeValue:
		return TypeValue{Ty: s.Type(k.Ty)}
	case RegionValue:
		return RegionValue{Region: s.Region(k.Region)}
	}
	return k
}
