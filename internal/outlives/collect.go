package outlives

import "github.com/funvibe/ferro/internal/typesystem"

// maxCollectDepth bounds the recursion through nested region components.
// Termination is already guaranteed by the finite structural size of a
// declaration-time type; the bound turns an upstream cycle into a reported
// internal error instead of a stack overflow.
const maxCollectDepth = 128

// Collect records, into required, every obligation implied by the
// requirement "arg must outlive outlived" that the declaration's header
// would have to carry.
//
// Anything that cannot be named on a header (late-bound regions, escaping
// projections) produces nothing, silently. The only failure mode is an
// internal-consistency error: a region variant or an inference variable
// that has no business existing at declaration time.
func Collect(arg typesystem.Kind, outlived typesystem.Region, required *RequiredPredicates) error {
	return collect(arg, outlived, required, 0)
}

func collect(arg typesystem.Kind, outlived typesystem.Region, required *RequiredPredicates, depth int) error {
	if depth > maxCollectDepth {
		return internalErrorf("outlives recursion exceeded %d levels at %s: %s", maxCollectDepth, arg, outlived)
	}

	// If the outlived region is bound within the field type itself, the
	// constraint cannot be written on the header; record nothing.
	free, err := isFreeRegion(outlived)
	if err != nil {
		return err
	}
	if !free {
		return nil
	}

	switch arg := arg.(type) {
	case typesystem.RegionValue:
		// 'r: 'outlived. Only worth recording when 'r itself is nameable
		// on the header.
		free, err := isFreeRegion(arg.Region)
		if err != nil {
			return err
		}
		if !free {
			return nil
		}
		required.Insert(Predicate{Arg: arg, Outlived: outlived})

	case typesystem.TypeValue:
		// T: 'outlived for some type T. T could be a lot of things:
		// if T = &'b u32, the obligation to record is 'b: 'outlived;
		// if T = Vec<U> inside a declaration generic over U, it is
		// U: 'outlived. Decompose and handle each atomic piece.
		for _, component := range Components(arg.Ty) {
			switch component := component.(type) {
			case RegionComponent:
				// A nested reference chain: &'b u32 under &'a surfaces
				// 'b, giving 'b: 'a. Recursing keeps arbitrarily deep
				// chains honest.
				err := collect(
					typesystem.RegionValue{Region: component.Region},
					outlived,
					required,
					depth+1,
				)
				if err != nil {
					return err
				}

			case ParamComponent:
				// A bare type parameter is already atomic.
				ty := typesystem.ParamType(component.Param.Index, component.Param.Name)
				required.Insert(Predicate{
					Arg:      typesystem.TypeValue{Ty: ty},
					Outlived: outlived,
				})

			case ProjectionComponent:
				// Record the non-normalized projection as-is, e.g.
				// <T as Iterator>::Item: 'outlived.
				ty := typesystem.ProjectionType(component.Projection.Trait, component.Projection.Item)
				required.Insert(Predicate{
					Arg:      typesystem.TypeValue{Ty: ty},
					Outlived: outlived,
				})

			case EscapingProjectionComponent:
				// The projection mentions a region bound by a binder not
				// in scope on the header. Its well-formedness is checked
				// at call sites, not here.

			case UnresolvedInferenceComponent:
				return internalErrorf("unresolved inference variable %s in declaration type", component.Infer)
			}
		}
	}

	return nil
}
