package parser

import (
	"github.com/funvibe/ferro/internal/ast"
	"github.com/funvibe/ferro/internal/diagnostics"
	"github.com/funvibe/ferro/internal/token"
)

// Parser is a recursive-descent parser over the declaration grammar:
//
//	struct Foo<'a, T> { x: &'a T }
//	enum Bar<'a, T: Iterator> { Item(&'a <T as Iterator>::Item), None }
type Parser struct {
	tokens []token.Token
	pos    int
	errors []*diagnostics.DiagnosticError
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) Errors() []*diagnostics.DiagnosticError {
	return p.errors
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for p.cur().Type != token.EOF {
		switch p.cur().Type {
		case token.STRUCT:
			if decl := p.parseStruct(); decl != nil {
				program.Decls = append(program.Decls, decl)
			}
		case token.ENUM:
			if decl := p.parseEnum(); decl != nil {
				program.Decls = append(program.Decls, decl)
			}
		default:
			p.errorf(diagnostics.ErrP001, p.cur(), "expected 'struct' or 'enum', got %q", p.cur().Lexeme)
			p.synchronize()
		}
	}
	return program
}

func (p *Parser) parseStruct() *ast.StructDecl {
	decl := &ast.StructDecl{Token: p.cur()}
	p.next() // consume 'struct'

	name, ok := p.expect(token.IDENT)
	if !ok {
		p.synchronize()
		return nil
	}
	decl.Name = name.Literal
	decl.Generics = p.parseGenerics()

	if _, ok := p.expect(token.LBRACE); !ok {
		p.synchronize()
		return nil
	}
	for p.cur().Type != token.RBRACE && p.cur().Type != token.EOF {
		field := p.parseField()
		if field == nil {
			p.synchronize()
			return decl
		}
		decl.Fields = append(decl.Fields, field)
		if p.cur().Type == token.COMMA {
			p.next()
		} else {
			break
		}
	}
	p.expect(token.RBRACE)
	return decl
}

func (p *Parser) parseField() *ast.Field {
	name, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.COLON); !ok {
		return nil
	}
	ty := p.parseType()
	if ty == nil {
		return nil
	}
	return &ast.Field{Token: name, Name: name.Literal, Ty: ty}
}

func (p *Parser) parseEnum() *ast.EnumDecl {
	decl := &ast.EnumDecl{Token: p.cur()}
	p.next() // consume 'enum'

	name, ok := p.expect(token.IDENT)
	if !ok {
		p.synchronize()
		return nil
	}
	decl.Name = name.Literal
	decl.Generics = p.parseGenerics()

	if _, ok := p.expect(token.LBRACE); !ok {
		p.synchronize()
		return nil
	}
	for p.cur().Type != token.RBRACE && p.cur().Type != token.EOF {
		variant := p.parseVariant()
		if variant == nil {
			p.synchronize()
			return decl
		}
		decl.Variants = append(decl.Variants, variant)
		if p.cur().Type == token.COMMA {
			p.next()
		} else {
			break
		}
	}
	p.expect(token.RBRACE)
	return decl
}

func (p *Parser) parseVariant() *ast.Variant {
	name, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	variant := &ast.Variant{Token: name, Name: name.Literal}
	if p.cur().Type == token.LPAREN {
		p.next()
		for p.cur().Type != token.RPAREN && p.cur().Type != token.EOF {
			ty := p.parseType()
			if ty == nil {
				return nil
			}
			variant.Payload = append(variant.Payload, ty)
			if p.cur().Type == token.COMMA {
				p.next()
			} else {
				break
			}
		}
		if _, ok := p.expect(token.RPAREN); !ok {
			return nil
		}
	}
	return variant
}

// parseGenerics parses <'a, 'b, T, U: Bound> if present. Lifetime
// parameters must precede type parameters.
func (p *Parser) parseGenerics() *ast.Generics {
	generics := &ast.Generics{}
	if p.cur().Type != token.LT {
		return generics
	}
	p.next() // consume '<'

	sawType := false
	for p.cur().Type != token.GT && p.cur().Type != token.EOF {
		switch p.cur().Type {
		case token.LIFETIME:
			if sawType {
				p.errorf(diagnostics.ErrP003, p.cur(), "lifetime parameters must come before type parameters")
			}
			generics.Lifetimes = append(generics.Lifetimes, &ast.LifetimeParam{
				Token: p.cur(),
				Name:  p.cur().Literal,
			})
			p.next()
		case token.IDENT:
			sawType = true
			param := &ast.TypeParam{Token: p.cur(), Name: p.cur().Literal}
			p.next()
			if p.cur().Type == token.COLON {
				p.next()
				for {
					bound, ok := p.expect(token.IDENT)
					if !ok {
						return generics
					}
					param.Bounds = append(param.Bounds, bound.Literal)
					if p.cur().Type != token.PLUS {
						break
					}
					p.next()
				}
			}
			generics.Types = append(generics.Types, param)
		default:
			p.errorf(diagnostics.ErrP003, p.cur(), "expected lifetime or type parameter, got %q", p.cur().Lexeme)
			return generics
		}
		if p.cur().Type == token.COMMA {
			p.next()
		} else {
			break
		}
	}
	p.expect(token.GT)
	return generics
}

// synchronize skips tokens until the next plausible declaration start.
func (p *Parser) synchronize() {
	for p.cur().Type != token.EOF {
		if p.cur().Type == token.STRUCT || p.cur().Type == token.ENUM {
			return
		}
		p.next()
	}
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		if len(p.tokens) == 0 {
			return token.Token{Type: token.EOF}
		}
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) next() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) expect(tt token.TokenType) (token.Token, bool) {
	tok := p.cur()
	if tok.Type != tt {
		p.errorf(diagnostics.ErrP002, tok, "expected %q, got %q", string(tt), tok.Lexeme)
		return tok, false
	}
	p.next()
	return tok, true
}

func (p *Parser) errorf(code string, tok token.Token, format string, args ...interface{}) {
	p.errors = append(p.errors, diagnostics.NewError(code, tok, sprintf(format, args...)))
}
