package symbols

import (
	"fmt"

	"github.com/funvibe/ferro/internal/typesystem"
)

// SymbolTable tracks the nominal declarations of one compilation. Lookup is
// by name; Names preserves declaration order so that batch output stays in
// source order.
type SymbolTable struct {
	adts  map[string]*typesystem.AdtDef
	order []string
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{adts: make(map[string]*typesystem.AdtDef)}
}

// Define registers a declaration. Redefinition of a name is an error.
func (st *SymbolTable) Define(def *typesystem.AdtDef) error {
	if _, exists := st.adts[def.Name]; exists {
		return fmt.Errorf("duplicate declaration: %s", def.Name)
	}
	st.adts[def.Name] = def
	st.order = append(st.order, def.Name)
	return nil
}

// Lookup resolves a declaration by name.
func (st *SymbolTable) Lookup(name string) (*typesystem.AdtDef, bool) {
	def, ok := st.adts[name]
	return def, ok
}

// Names returns the declared names in declaration order.
func (st *SymbolTable) Names() []string {
	out := make([]string, len(st.order))
	copy(out, st.order)
	return out
}
