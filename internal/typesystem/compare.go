package typesystem

import "strings"

// Canonical structural ordering for substitution arguments and regions.
//
// The keys are built from the printed form, tagged by variant. Within one
// declaration this is unambiguous: everything ordered through these keys has
// already been screened to contain only declaration-visible regions, whose
// printed names are unique per declaration.

// KindSortKey returns a canonical structural key for a substitution argument.
func KindSortKey(k Kind) string {
	switch k := k.(type) {
	case TypeValue:
		return "ty:" + k.Ty.String()
	case RegionValue:
		return "re:" + k.Region.String()
	}
	return "??:" + k.String()
}

// RegionSortKey returns a canonical structural key for a region.
func RegionSortKey(r Region) string {
	return r.String()
}

// CompareKinds orders substitution arguments by their canonical keys.
func CompareKinds(a, b Kind) int {
	return strings.Compare(KindSortKey(a), KindSortKey(b))
}

// CompareRegions orders regions by their canonical keys.
func CompareRegions(a, b Region) int {
	return strings.Compare(RegionSortKey(a), RegionSortKey(b))
}
