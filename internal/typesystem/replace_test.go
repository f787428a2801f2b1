package typesystem

import "testing"

func innerDef() *AdtDef {
	return &AdtDef{Name: "Inner", Lifetimes: []string{"x"}, TypeParams: []string{"T"}}
}

func TestSubstRegion(t *testing.T) {
	def := innerDef()
	subst := NewSubst(def, []Kind{
		RegionValue{Region: ReEarlyBound{Index: 0, Name: "a"}},
		TypeValue{Ty: TParam{Index: 1, Name: "U"}},
	})

	got := subst.Region(ReEarlyBound{Index: 0, Name: "x"})
	if got.String() != "'a" {
		t.Errorf("substituted region = %s, want 'a", got)
	}

	// Regions that are not the declaration's own parameters pass through.
	if got := subst.Region(ReStatic{}); got.String() != "'static" {
		t.Errorf("static substituted to %s", got)
	}
	late := ReLateBound{Depth: 0, Index: 0, Name: "b"}
	if got := subst.Region(late); got != Region(late) {
		t.Errorf("late-bound substituted to %s", got)
	}
}

func TestSubstType(t *testing.T) {
	def := innerDef()
	subst := NewSubst(def, []Kind{
		RegionValue{Region: ReEarlyBound{Index: 1, Name: "b"}},
		TypeValue{Ty: TParam{Index: 0, Name: "U"}},
	})

	// &'x T with {x -> 'b, T -> U} becomes &'b U.
	ty := TRef{Region: ReEarlyBound{Index: 0, Name: "x"}, Elem: TParam{Index: 0, Name: "T"}}
	if got := subst.Type(ty).String(); got != "&'b U" {
		t.Errorf("substituted type = %q, want %q", got, "&'b U")
	}

	// Substitution reaches inside projections.
	proj := TProjection{
		Trait: TraitRef{Name: "Iterator", SelfType: TParam{Index: 0, Name: "T"}},
		Item:  "Item",
	}
	if got := subst.Type(proj).String(); got != "<U as Iterator>::Item" {
		t.Errorf("substituted projection = %q", got)
	}
}

func TestKindSortKeySeparatesVariants(t *testing.T) {
	// A type and a region that happen to print alike must not collapse.
	tyKey := KindSortKey(TypeValue{Ty: TPrim{Name: "u32"}})
	reKey := KindSortKey(RegionValue{Region: ReStatic{}})
	if tyKey == reKey {
		t.Errorf("type and region keys collide: %q", tyKey)
	}
	if CompareKinds(TypeValue{Ty: TPrim{Name: "u32"}}, RegionValue{Region: ReStatic{}}) == 0 {
		t.Error("CompareKinds treats a type and a region as equal")
	}
}

func TestTypeStrings(t *testing.T) {
	tests := []struct {
		name string
		ty   Type
		want string
	}{
		{
			name: "reference",
			ty:   TRef{Region: ReEarlyBound{Index: 0, Name: "a"}, Elem: TPrim{Name: "u32"}},
			want: "&'a u32",
		},
		{
			name: "mutable reference",
			ty:   TRef{Region: ReStatic{}, Mut: true, Elem: TPrim{Name: "bool"}},
			want: "&'static mut bool",
		},
		{
			name: "adt application",
			ty: TAdt{
				Def:  &AdtDef{Name: "Vec", TypeParams: []string{"T"}},
				Args: []Kind{TypeValue{Ty: TParam{Index: 0, Name: "U"}}},
			},
			want: "Vec<U>",
		},
		{
			name: "fn pointer with binder",
			ty: TFnPtr{
				Binders: []string{"b"},
				Params:  []Type{TRef{Region: ReLateBound{Depth: 0, Index: 0, Name: "b"}, Elem: TParam{Index: 0, Name: "T"}}},
			},
			want: "for<'b> fn(&'b T)",
		},
		{
			name: "tuple",
			ty:   TTuple{Elems: []Type{TPrim{Name: "u8"}, TParam{Index: 0, Name: "T"}}},
			want: "(u8, T)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ty.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
