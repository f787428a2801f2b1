package outlives

import "github.com/funvibe/ferro/internal/typesystem"

// isFreeRegion reports whether a region is declaration-visible: nameable on
// the header of the type being analyzed.
//
// Late-bound regions are not free, and that is not an error: they belong to
// a function-type binder inside a field and simply cannot be named on the
// header. Every other non-free variant belongs to later inference or borrow
// stages and must never reach declaration-time analysis.
func isFreeRegion(r typesystem.Region) (bool, error) {
	switch r.(type) {
	case typesystem.ReStatic, typesystem.ReEarlyBound:
		// These can appear on a header: a declared lifetime parameter or
		// 'static. Obligations against them are worth recording.
		return true, nil

	case typesystem.ReLateBound:
		// 'b in `for<'b> fn(&'b T)`. A `T: 'b` obligation cannot be put
		// on the header anyway, so it is dropped, not reported.
		return false, nil

	case typesystem.ReEmpty,
		typesystem.ReErased,
		typesystem.ReClosureBound,
		typesystem.ReCanonical,
		typesystem.ReScope,
		typesystem.ReInfer,
		typesystem.ReSkolemized,
		typesystem.ReFreeCallSite:
		return false, internalErrorf("unexpected region in outlives inference: %s", r)

	default:
		return false, internalErrorf("unknown region variant in outlives inference: %s", r)
	}
}
