package parser

import (
	"fmt"

	"github.com/funvibe/ferro/internal/ast"
	"github.com/funvibe/ferro/internal/diagnostics"
	"github.com/funvibe/ferro/internal/token"
)

func sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

// parseType parses one type expression. Returns nil after reporting an
// error.
func (p *Parser) parseType() ast.TypeExpr {
	switch p.cur().Type {
	case token.AMP:
		return p.parseRefType()
	case token.FOR, token.FN:
		return p.parseFnPtrType()
	case token.LT:
		return p.parseProjectionType()
	case token.LPAREN:
		return p.parseTupleType()
	case token.UNDERSCORE:
		ty := &ast.InferType{Token: p.cur()}
		p.next()
		return ty
	case token.IDENT:
		return p.parseNamedType()
	default:
		p.errorf(diagnostics.ErrP001, p.cur(), "expected a type, got %q", p.cur().Lexeme)
		return nil
	}
}

// parseRefType parses &'a T and &'a mut T. The lifetime is optional in the
// grammar; lowering rejects elided lifetimes in declarations.
func (p *Parser) parseRefType() ast.TypeExpr {
	ref := &ast.RefType{Token: p.cur()}
	p.next() // consume '&'

	if p.cur().Type == token.LIFETIME {
		ref.Lifetime = &ast.LifetimeRef{Token: p.cur(), Name: p.cur().Literal}
		p.next()
	}
	if p.cur().Type == token.MUT {
		ref.Mut = true
		p.next()
	}
	ref.Elem = p.parseType()
	if ref.Elem == nil {
		return nil
	}
	return ref
}

// parseFnPtrType parses fn(T, U) -> V, optionally with a higher-ranked
// binder: for<'b> fn(&'b T).
func (p *Parser) parseFnPtrType() ast.TypeExpr {
	fnptr := &ast.FnPtrType{Token: p.cur()}

	if p.cur().Type == token.FOR {
		p.next()
		if _, ok := p.expect(token.LT); !ok {
			return nil
		}
		for p.cur().Type == token.LIFETIME {
			fnptr.Binders = append(fnptr.Binders, &ast.LifetimeParam{
				Token: p.cur(),
				Name:  p.cur().Literal,
			})
			p.next()
			if p.cur().Type == token.COMMA {
				p.next()
			}
		}
		if _, ok := p.expect(token.GT); !ok {
			return nil
		}
	}

	if _, ok := p.expect(token.FN); !ok {
		return nil
	}
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil
	}
	for p.cur().Type != token.RPAREN && p.cur().Type != token.EOF {
		param := p.parseType()
		if param == nil {
			return nil
		}
		fnptr.Params = append(fnptr.Params, param)
		if p.cur().Type == token.COMMA {
			p.next()
		} else {
			break
		}
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil
	}
	if p.cur().Type == token.ARROW {
		p.next()
		fnptr.Ret = p.parseType()
		if fnptr.Ret == nil {
			return nil
		}
	}
	return fnptr
}

// parseProjectionType parses <T as Iterator>::Item.
func (p *Parser) parseProjectionType() ast.TypeExpr {
	proj := &ast.ProjectionType{Token: p.cur()}
	p.next() // consume '<'

	proj.SelfType = p.parseType()
	if proj.SelfType == nil {
		return nil
	}
	if _, ok := p.expect(token.AS); !ok {
		return nil
	}
	traitName, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	trait := &ast.NamedType{Token: traitName, Name: traitName.Literal}
	if p.cur().Type == token.LT {
		trait.Args = p.parseGenericArgs()
		if trait.Args == nil {
			return nil
		}
	}
	proj.Trait = trait

	if _, ok := p.expect(token.GT); !ok {
		return nil
	}
	if _, ok := p.expect(token.PATHSEP); !ok {
		return nil
	}
	item, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	proj.Item = item.Literal
	return proj
}

func (p *Parser) parseTupleType() ast.TypeExpr {
	tuple := &ast.TupleType{Token: p.cur()}
	p.next() // consume '('
	for p.cur().Type != token.RPAREN && p.cur().Type != token.EOF {
		elem := p.parseType()
		if elem == nil {
			return nil
		}
		tuple.Elems = append(tuple.Elems, elem)
		if p.cur().Type == token.COMMA {
			p.next()
		} else {
			break
		}
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil
	}
	return tuple
}

func (p *Parser) parseNamedType() ast.TypeExpr {
	named := &ast.NamedType{Token: p.cur(), Name: p.cur().Literal}
	p.next()
	if p.cur().Type == token.LT {
		named.Args = p.parseGenericArgs()
		if named.Args == nil {
			return nil
		}
	}
	return named
}

// parseGenericArgs parses <arg, arg, ...> where each arg is a lifetime or a
// type. The opening '<' is the current token.
func (p *Parser) parseGenericArgs() []ast.GenericArg {
	p.next() // consume '<'
	var args []ast.GenericArg
	for p.cur().Type != token.GT && p.cur().Type != token.EOF {
		if p.cur().Type == token.LIFETIME {
			args = append(args, &ast.LifetimeRef{Token: p.cur(), Name: p.cur().Literal})
			p.next()
		} else {
			ty := p.parseType()
			if ty == nil {
				return nil
			}
			arg, ok := ty.(ast.GenericArg)
			if !ok {
				p.errorf(diagnostics.ErrP001, p.cur(), "type cannot be used as a generic argument")
				return nil
			}
			args = append(args, arg)
		}
		if p.cur().Type == token.COMMA {
			p.next()
		} else {
			break
		}
	}
	if _, ok := p.expect(token.GT); !ok {
		return nil
	}
	return args
}
