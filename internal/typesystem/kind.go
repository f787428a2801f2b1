package typesystem

// Kind is a generic substitution argument: either a type or a region.
// The name follows the classic "kinded argument" terminology for the
// slots of a generic declaration.
type Kind interface {
	kindNode()
	String() string
}

// TypeValue wraps a type as a substitution argument.
type TypeValue struct {
	Ty Type
}

// RegionValue wraps a region as a substitution argument.
type RegionValue struct {
	Region Region
}

func (TypeValue) kindNode()   {}
func (RegionValue) kindNode() {}

func (k TypeValue) String() string   { return k.Ty.String() }
func (k RegionValue) String() string { return k.Region.String() }

// ParamType builds the atomic type value for a type parameter. A bare type
// parameter needs no further decomposition.
func ParamType(index int, name string) Type {
	return TParam{Index: index, Name: name}
}

// ProjectionType rebuilds the non-normalized projection type for an
// associated-type reference.
func ProjectionType(trait TraitRef, item string) Type {
	return TProjection{Trait: trait, Item: item}
}
