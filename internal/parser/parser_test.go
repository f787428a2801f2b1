package parser

import (
	"testing"

	"github.com/funvibe/ferro/internal/ast"
	"github.com/funvibe/ferro/internal/lexer"
	"github.com/funvibe/ferro/internal/token"
)

func parseSource(t *testing.T, input string) (*ast.Program, *Parser) {
	t.Helper()
	l := lexer.New(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	p := New(tokens)
	return p.ParseProgram(), p
}

func parseValid(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, p := parseSource(t, input)
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	return program
}

func TestParseStruct(t *testing.T) {
	program := parseValid(t, `struct Foo<'a, 'b, T> {
		x: &'a &'b u32,
		y: &'a Vec<T>,
	}`)

	if len(program.Decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(program.Decls))
	}
	decl, ok := program.Decls[0].(*ast.StructDecl)
	if !ok {
		t.Fatalf("declaration is %T, want *ast.StructDecl", program.Decls[0])
	}
	if decl.Name != "Foo" {
		t.Errorf("name = %q, want Foo", decl.Name)
	}
	if len(decl.Generics.Lifetimes) != 2 || len(decl.Generics.Types) != 1 {
		t.Errorf("generics = %d lifetimes / %d types, want 2/1",
			len(decl.Generics.Lifetimes), len(decl.Generics.Types))
	}
	if len(decl.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(decl.Fields))
	}

	outer, ok := decl.Fields[0].Ty.(*ast.RefType)
	if !ok {
		t.Fatalf("field x is %T, want *ast.RefType", decl.Fields[0].Ty)
	}
	if outer.Lifetime == nil || outer.Lifetime.Name != "a" {
		t.Errorf("outer lifetime = %v, want 'a", outer.Lifetime)
	}
	inner, ok := outer.Elem.(*ast.RefType)
	if !ok {
		t.Fatalf("inner type is %T, want *ast.RefType", outer.Elem)
	}
	if inner.Lifetime == nil || inner.Lifetime.Name != "b" {
		t.Errorf("inner lifetime = %v, want 'b", inner.Lifetime)
	}
}

func TestParseEnum(t *testing.T) {
	program := parseValid(t, `enum Option<T> {
		Some(T),
		None,
	}`)

	decl, ok := program.Decls[0].(*ast.EnumDecl)
	if !ok {
		t.Fatalf("declaration is %T, want *ast.EnumDecl", program.Decls[0])
	}
	if len(decl.Variants) != 2 {
		t.Fatalf("got %d variants, want 2", len(decl.Variants))
	}
	if len(decl.Variants[0].Payload) != 1 {
		t.Errorf("Some payload = %d types, want 1", len(decl.Variants[0].Payload))
	}
	if len(decl.Variants[1].Payload) != 0 {
		t.Errorf("None payload = %d types, want 0", len(decl.Variants[1].Payload))
	}
}

func TestParseFnPtrWithBinder(t *testing.T) {
	program := parseValid(t, `struct Callbacks<T> {
		f: for<'b> fn(&'b T) -> u32,
		g: fn(u8, u8),
	}`)

	decl := program.Decls[0].(*ast.StructDecl)
	f, ok := decl.Fields[0].Ty.(*ast.FnPtrType)
	if !ok {
		t.Fatalf("field f is %T, want *ast.FnPtrType", decl.Fields[0].Ty)
	}
	if len(f.Binders) != 1 || f.Binders[0].Name != "b" {
		t.Errorf("binders = %v, want ['b]", f.Binders)
	}
	if len(f.Params) != 1 || f.Ret == nil {
		t.Errorf("f signature: %d params, ret %v", len(f.Params), f.Ret)
	}

	g := decl.Fields[1].Ty.(*ast.FnPtrType)
	if len(g.Binders) != 0 || len(g.Params) != 2 || g.Ret != nil {
		t.Errorf("g signature unexpected: %+v", g)
	}
}

func TestParseProjection(t *testing.T) {
	program := parseValid(t, `struct Holder<'a, T: Iterator> {
		item: &'a <T as Iterator>::Item,
	}`)

	decl := program.Decls[0].(*ast.StructDecl)
	if bounds := decl.Generics.Types[0].Bounds; len(bounds) != 1 || bounds[0] != "Iterator" {
		t.Errorf("T bounds = %v, want [Iterator]", bounds)
	}

	ref := decl.Fields[0].Ty.(*ast.RefType)
	proj, ok := ref.Elem.(*ast.ProjectionType)
	if !ok {
		t.Fatalf("field type is %T, want *ast.ProjectionType", ref.Elem)
	}
	if proj.Trait.Name != "Iterator" || proj.Item != "Item" {
		t.Errorf("projection = <%s>::%s", proj.Trait.Name, proj.Item)
	}
	if _, ok := proj.SelfType.(*ast.NamedType); !ok {
		t.Errorf("self type is %T, want *ast.NamedType", proj.SelfType)
	}
}

func TestParseGenericArgs(t *testing.T) {
	program := parseValid(t, `struct Outer<'a, T> {
		inner: Inner<'a, T>,
	}`)

	decl := program.Decls[0].(*ast.StructDecl)
	named := decl.Fields[0].Ty.(*ast.NamedType)
	if len(named.Args) != 2 {
		t.Fatalf("got %d generic args, want 2", len(named.Args))
	}
	if _, ok := named.Args[0].(*ast.LifetimeRef); !ok {
		t.Errorf("first arg is %T, want *ast.LifetimeRef", named.Args[0])
	}
	if _, ok := named.Args[1].(*ast.NamedType); !ok {
		t.Errorf("second arg is %T, want *ast.NamedType", named.Args[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "lifetimes after types", input: `struct Foo<T, 'a> { x: T }`},
		{name: "missing field type", input: `struct Foo { x: }`},
		{name: "not a declaration", input: `fn main() {}`},
		{name: "unclosed generics", input: `struct Foo<'a { x: u32 }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, p := parseSource(t, tt.input)
			if len(p.Errors()) == 0 {
				t.Errorf("expected parse errors for %q", tt.input)
			}
		})
	}
}

func TestParserRecoversBetweenDeclarations(t *testing.T) {
	program, p := parseSource(t, `
		struct Broken<'a { x: u32 }
		struct Fine { y: u32 }
	`)
	if len(p.Errors()) == 0 {
		t.Fatal("expected errors from the broken declaration")
	}
	found := false
	for _, decl := range program.Decls {
		if decl.DeclName() == "Fine" {
			found = true
		}
	}
	if !found {
		t.Error("parser did not recover to parse the following declaration")
	}
}
