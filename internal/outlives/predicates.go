package outlives

import (
	"strings"

	set "github.com/hashicorp/go-set/v3"

	"github.com/funvibe/ferro/internal/typesystem"
)

// Predicate is the obligation "Arg must outlive Outlived": the value behind
// Arg stays valid for at least the span denoted by Outlived. Equality and
// ordering are structural.
type Predicate struct {
	Arg      typesystem.Kind
	Outlived typesystem.Region
}

func (p Predicate) String() string {
	return p.Arg.String() + ": " + p.Outlived.String()
}

func (p Predicate) sortKey() string {
	return typesystem.KindSortKey(p.Arg) + " : " + typesystem.RegionSortKey(p.Outlived)
}

func comparePredicates(a, b Predicate) int {
	return strings.Compare(a.sortKey(), b.sortKey())
}

// RequiredPredicates is the set of outlives obligations inferred for one
// declaration's header. Unique by structural equality, iterated in canonical
// sorted order regardless of insertion order.
//
// A set is owned by the analysis of a single declaration: created fresh,
// filled during the field walk, then read out for header synthesis. It is
// never shared across declarations.
type RequiredPredicates struct {
	set *set.TreeSet[Predicate]
}

// NewRequiredPredicates creates an empty set.
func NewRequiredPredicates() *RequiredPredicates {
	return &RequiredPredicates{
		set: set.TreeSetFrom[Predicate](nil, comparePredicates),
	}
}

// Insert adds a predicate. Inserting an already-present predicate is a
// no-op; the same obligation rediscovered along different nested paths is
// recorded exactly once.
func (rp *RequiredPredicates) Insert(p Predicate) {
	rp.set.Insert(p)
}

// Contains reports structural membership.
func (rp *RequiredPredicates) Contains(p Predicate) bool {
	return rp.set.Contains(p)
}

// Len returns the number of distinct predicates.
func (rp *RequiredPredicates) Len() int {
	return rp.set.Size()
}

// Slice returns the predicates in canonical sorted order.
func (rp *RequiredPredicates) Slice() []Predicate {
	return rp.set.Slice()
}

func (rp *RequiredPredicates) String() string {
	parts := make([]string, 0, rp.Len())
	for _, p := range rp.Slice() {
		parts = append(parts, p.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
