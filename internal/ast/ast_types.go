package ast

import "github.com/funvibe/ferro/internal/token"

// --- Type System Nodes ---

// TypeExpr represents a type node in the AST.
// E.g., u32, Vec<T>, &'a T, for<'b> fn(&'b T) -> U, <T as Iterator>::Item
type TypeExpr interface {
	Node
	typeNode()
	GetToken() token.Token
}

// GenericArg is an argument in a generic application: a lifetime or a type.
type GenericArg interface {
	Node
	genericArgNode()
	GetToken() token.Token
}

// LifetimeRef is a use of a lifetime, e.g. 'a or 'static.
type LifetimeRef struct {
	Token token.Token // the LIFETIME token
	Name  string
}

func (lr *LifetimeRef) genericArgNode()       {}
func (lr *LifetimeRef) TokenLiteral() string  { return lr.Token.Lexeme }
func (lr *LifetimeRef) GetToken() token.Token { return lr.Token }

// NamedType is a named, possibly applied type: u32, Foo, Vec<T>, Foo<'a, T>.
type NamedType struct {
	Token token.Token // the IDENT token
	Name  string
	Args  []GenericArg
}

func (nt *NamedType) typeNode()             {}
func (nt *NamedType) genericArgNode()       {}
func (nt *NamedType) TokenLiteral() string  { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token { return nt.Token }

// RefType is a reference type &'a T or &'a mut T. Lifetime may be nil for
// an elided lifetime, which is not allowed in declarations and rejected
// during lowering.
type RefType struct {
	Token    token.Token // the '&' token
	Lifetime *LifetimeRef
	Mut      bool
	Elem     TypeExpr
}

func (rt *RefType) typeNode()             {}
func (rt *RefType) genericArgNode()       {}
func (rt *RefType) TokenLiteral() string  { return rt.Token.Lexeme }
func (rt *RefType) GetToken() token.Token { return rt.Token }

// TupleType is a tuple type (A, B); () is the unit type.
type TupleType struct {
	Token token.Token // the '(' token
	Elems []TypeExpr
}

func (tt *TupleType) typeNode()             {}
func (tt *TupleType) genericArgNode()       {}
func (tt *TupleType) TokenLiteral() string  { return tt.Token.Lexeme }
func (tt *TupleType) GetToken() token.Token { return tt.Token }

// FnPtrType is a function-pointer type with an optional higher-ranked
// binder: for<'b> fn(&'b T) -> U.
type FnPtrType struct {
	Token   token.Token // the 'for' or 'fn' token
	Binders []*LifetimeParam
	Params  []TypeExpr
	Ret     TypeExpr // nil when no return type is written
}

func (ft *FnPtrType) typeNode()             {}
func (ft *FnPtrType) genericArgNode()       {}
func (ft *FnPtrType) TokenLiteral() string  { return ft.Token.Lexeme }
func (ft *FnPtrType) GetToken() token.Token { return ft.Token }

// ProjectionType is a qualified associated-type projection:
// <T as Iterator>::Item.
type ProjectionType struct {
	Token    token.Token // the '<' token
	SelfType TypeExpr
	Trait    *NamedType
	Item     string
}

func (pt *ProjectionType) typeNode()             {}
func (pt *ProjectionType) genericArgNode()       {}
func (pt *ProjectionType) TokenLiteral() string  { return pt.Token.Lexeme }
func (pt *ProjectionType) GetToken() token.Token { return pt.Token }

// InferType is the `_` placeholder. Declarations may not use it; it exists
// so the front-end can parse it and let the analysis reject it in one place.
type InferType struct {
	Token token.Token // the '_' token
}

func (it *InferType) typeNode()             {}
func (it *InferType) genericArgNode()       {}
func (it *InferType) TokenLiteral() string  { return it.Token.Lexeme }
func (it *InferType) GetToken() token.Token { return it.Token }
