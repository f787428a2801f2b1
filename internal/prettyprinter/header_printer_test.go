package prettyprinter

import (
	"testing"

	"github.com/funvibe/ferro/internal/outlives"
	"github.com/funvibe/ferro/internal/typesystem"
)

func TestPrintHeader(t *testing.T) {
	regionA := typesystem.ReEarlyBound{Index: 0, Name: "a"}
	regionB := typesystem.ReEarlyBound{Index: 1, Name: "b"}
	paramU := typesystem.TParam{Index: 0, Name: "U"}

	withPredicates := outlives.NewRequiredPredicates()
	withPredicates.Insert(outlives.Predicate{Arg: typesystem.TypeValue{Ty: paramU}, Outlived: regionA})
	withPredicates.Insert(outlives.Predicate{Arg: typesystem.RegionValue{Region: regionB}, Outlived: regionA})

	tests := []struct {
		name     string
		def      *typesystem.AdtDef
		required *outlives.RequiredPredicates
		want     string
	}{
		{
			name: "plain struct",
			def:  &typesystem.AdtDef{Name: "Point"},
			want: "struct Point",
		},
		{
			name: "generic struct without obligations",
			def:  &typesystem.AdtDef{Name: "Pair", TypeParams: []string{"L", "R"}},
			want: "struct Pair<L, R>",
		},
		{
			name:     "empty set prints no where clause",
			def:      &typesystem.AdtDef{Name: "Unit", Lifetimes: []string{"a"}},
			required: outlives.NewRequiredPredicates(),
			want:     "struct Unit<'a>",
		},
		{
			name:     "struct with obligations",
			def:      &typesystem.AdtDef{Name: "Foo", Lifetimes: []string{"a", "b"}, TypeParams: []string{"U"}},
			required: withPredicates,
			want:     "struct Foo<'a, 'b, U> where 'b: 'a, U: 'a",
		},
		{
			name:     "enum keyword",
			def:      &typesystem.AdtDef{Name: "Either", IsEnum: true, TypeParams: []string{"L", "R"}},
			required: outlives.NewRequiredPredicates(),
			want:     "enum Either<L, R>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrintHeader(tt.def, tt.required); got != tt.want {
				t.Errorf("PrintHeader() = %q, want %q", got, tt.want)
			}
		})
	}
}
