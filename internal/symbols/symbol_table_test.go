package symbols

import (
	"reflect"
	"testing"

	"github.com/funvibe/ferro/internal/typesystem"
)

func TestSymbolTable(t *testing.T) {
	table := NewSymbolTable()

	vec := &typesystem.AdtDef{Name: "Vec", TypeParams: []string{"T"}}
	foo := &typesystem.AdtDef{Name: "Foo", Lifetimes: []string{"a"}}

	if err := table.Define(vec); err != nil {
		t.Fatalf("Define(Vec): %v", err)
	}
	if err := table.Define(foo); err != nil {
		t.Fatalf("Define(Foo): %v", err)
	}
	if err := table.Define(&typesystem.AdtDef{Name: "Vec"}); err == nil {
		t.Error("redefining Vec should fail")
	}

	got, ok := table.Lookup("Vec")
	if !ok || got != vec {
		t.Errorf("Lookup(Vec) = %v, %v", got, ok)
	}
	if _, ok := table.Lookup("Missing"); ok {
		t.Error("Lookup(Missing) should fail")
	}

	if names := table.Names(); !reflect.DeepEqual(names, []string{"Vec", "Foo"}) {
		t.Errorf("Names() = %v, want declaration order [Vec Foo]", names)
	}
}
