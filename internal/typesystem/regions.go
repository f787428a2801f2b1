package typesystem

import (
	"fmt"
	"strconv"
)

// Region is the interface for all region (lifetime) values.
//
// Only ReStatic, ReEarlyBound and ReLateBound can legally occur in a
// declaration-time type. The remaining variants belong to later inference
// and borrow-checking stages; they are modeled here so that every stage of
// the front-end shares one region representation, and so that the outlives
// pass can detect them as internal inconsistencies instead of silently
// mis-classifying them.
type Region interface {
	regionNode()
	String() string
}

// ReStatic is the global region: valid for the whole program.
type ReStatic struct{}

// ReEarlyBound is a lifetime parameter declared on a type header,
// e.g. 'a in `struct Foo<'a>`.
type ReEarlyBound struct {
	Index int // position among the declaration's lifetime parameters
	Name  string
}

// ReLateBound is a region bound by an enclosing function-type binder,
// e.g. 'b in `for<'b> fn(&'b T)`. Depth is the de Bruijn depth of the
// binder (0 = innermost), Index the position within that binder.
type ReLateBound struct {
	Depth int
	Index int
	Name  string
}

// ReEmpty is the empty region.
type ReEmpty struct{}

// ReErased is a region erased after type-checking.
type ReErased struct{}

// ReClosureBound is a region bound in a closure's inference output.
type ReClosureBound struct {
	ID int
}

// ReCanonical is a canonicalized region placeholder used during queries.
type ReCanonical struct {
	Index int
}

// ReScope is a lexical-scope region produced by borrow analysis.
type ReScope struct {
	ID int
}

// ReInfer is a region inference variable.
type ReInfer struct {
	ID int
}

// ReSkolemized is a placeholder region used when checking higher-ranked
// subtyping.
type ReSkolemized struct {
	ID   int
	Name string
}

// ReFreeCallSite is a free region as instantiated inside a function body at
// a call site.
type ReFreeCallSite struct {
	ID   int
	Name string
}

func (ReStatic) regionNode()       {}
func (ReEarlyBound) regionNode()   {}
func (ReLateBound) regionNode()    {}
func (ReEmpty) regionNode()        {}
func (ReErased) regionNode()       {}
func (ReClosureBound) regionNode() {}
func (ReCanonical) regionNode()    {}
func (ReScope) regionNode()        {}
func (ReInfer) regionNode()        {}
func (ReSkolemized) regionNode()   {}
func (ReFreeCallSite) regionNode() {}

func (ReStatic) String() string { return "'static" }

func (r ReEarlyBound) String() string { return "'" + r.Name }

func (r ReLateBound) String() string {
	if r.Name != "" {
		return "'" + r.Name
	}
	return fmt.Sprintf("'^%d.%d", r.Depth, r.Index)
}

func (ReEmpty) String() string  { return "'<empty>" }
func (ReErased) String() string { return "'_" }

func (r ReClosureBound) String() string { return "'<closure#" + strconv.Itoa(r.ID) + ">" }
func (r ReCanonical) String() string    { return "'?C" + strconv.Itoa(r.Index) }
func (r ReScope) String() string        { return "'<scope#" + strconv.Itoa(r.ID) + ">" }
func (r ReInfer) String() string        { return "'?" + strconv.Itoa(r.ID) }
func (r ReSkolemized) String() string   { return "'!" + strconv.Itoa(r.ID) }
func (r ReFreeCallSite) String() string { return "'<free#" + strconv.Itoa(r.ID) + ">" }
