package ast

import "github.com/funvibe/ferro/internal/token"

// TokenProvider is an interface for any AST node that can provide its
// primary token. Useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Decl is a top-level declaration.
type Decl interface {
	Node
	declNode()
	GetToken() token.Token
	DeclName() string
}

// Program is a parsed source file: a sequence of declarations.
type Program struct {
	File  string
	Decls []Decl
}

func (p *Program) TokenLiteral() string {
	if len(p.Decls) > 0 {
		return p.Decls[0].TokenLiteral()
	}
	return ""
}

// LifetimeParam is a declared lifetime parameter, e.g. 'a in Foo<'a>.
type LifetimeParam struct {
	Token token.Token // the LIFETIME token
	Name  string
}

// TypeParam is a declared type parameter, optionally bounded by traits,
// e.g. T or T: Iterator.
type TypeParam struct {
	Token  token.Token // the IDENT token
	Name   string
	Bounds []string // trait names
}

// Generics is the parameter list of a declaration header. Lifetimes always
// precede type parameters.
type Generics struct {
	Lifetimes []*LifetimeParam
	Types     []*TypeParam
}

// IsEmpty reports whether the declaration takes no generic parameters.
func (g *Generics) IsEmpty() bool {
	return g == nil || (len(g.Lifetimes) == 0 && len(g.Types) == 0)
}

// Field is one named field of a struct declaration.
type Field struct {
	Token token.Token // the field-name token
	Name  string
	Ty    TypeExpr
}

// Variant is one variant of an enum declaration; Payload may be empty.
type Variant struct {
	Token   token.Token // the variant-name token
	Name    string
	Payload []TypeExpr
}

// StructDecl is `struct Name<...> { field: Type, ... }`.
type StructDecl struct {
	Token    token.Token // the 'struct' token
	Name     string
	Generics *Generics
	Fields   []*Field
}

func (sd *StructDecl) declNode()             {}
func (sd *StructDecl) TokenLiteral() string  { return sd.Token.Lexeme }
func (sd *StructDecl) GetToken() token.Token { return sd.Token }
func (sd *StructDecl) DeclName() string      { return sd.Name }

// EnumDecl is `enum Name<...> { Variant(Type, ...), ... }`.
type EnumDecl struct {
	Token    token.Token // the 'enum' token
	Name     string
	Generics *Generics
	Variants []*Variant
}

func (ed *EnumDecl) declNode()             {}
func (ed *EnumDecl) TokenLiteral() string  { return ed.Token.Lexeme }
func (ed *EnumDecl) GetToken() token.Token { return ed.Token }
func (ed *EnumDecl) DeclName() string      { return ed.Name }
