package lexer

import (
	"testing"

	"github.com/funvibe/ferro/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `struct Foo<'a, T> {
	x: &'a T, // a borrowed field
	y: for<'b> fn(&'b T) -> u32,
	item: <T as Iterator>::Item,
}`

	tests := []struct {
		wantType    token.TokenType
		wantLiteral string
	}{
		{token.STRUCT, "struct"},
		{token.IDENT, "Foo"},
		{token.LT, "<"},
		{token.LIFETIME, "a"},
		{token.COMMA, ","},
		{token.IDENT, "T"},
		{token.GT, ">"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.COLON, ":"},
		{token.AMP, "&"},
		{token.LIFETIME, "a"},
		{token.IDENT, "T"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.COLON, ":"},
		{token.FOR, "for"},
		{token.LT, "<"},
		{token.LIFETIME, "b"},
		{token.GT, ">"},
		{token.FN, "fn"},
		{token.LPAREN, "("},
		{token.AMP, "&"},
		{token.LIFETIME, "b"},
		{token.IDENT, "T"},
		{token.RPAREN, ")"},
		{token.ARROW, "->"},
		{token.IDENT, "u32"},
		{token.COMMA, ","},
		{token.IDENT, "item"},
		{token.COLON, ":"},
		{token.LT, "<"},
		{token.IDENT, "T"},
		{token.AS, "as"},
		{token.IDENT, "Iterator"},
		{token.GT, ">"},
		{token.PATHSEP, "::"},
		{token.IDENT, "Item"},
		{token.COMMA, ","},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("token %d: type = %q, want %q (lexeme %q)", i, tok.Type, tt.wantType, tok.Lexeme)
		}
		if tok.Literal != tt.wantLiteral {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, tt.wantLiteral)
		}
	}
}

func TestStaticLifetime(t *testing.T) {
	l := New("&'static u32")
	amp := l.NextToken()
	if amp.Type != token.AMP {
		t.Fatalf("first token = %q, want &", amp.Type)
	}
	lt := l.NextToken()
	if lt.Type != token.LIFETIME || lt.Literal != "static" {
		t.Errorf("lifetime token = %q/%q, want LIFETIME/static", lt.Type, lt.Literal)
	}
	if lt.Lexeme != "'static" {
		t.Errorf("lexeme = %q, want 'static", lt.Lexeme)
	}
}

func TestUnderscoreToken(t *testing.T) {
	l := New("_ _x")
	underscore := l.NextToken()
	if underscore.Type != token.UNDERSCORE {
		t.Errorf("bare underscore tokenized as %q", underscore.Type)
	}
	ident := l.NextToken()
	if ident.Type != token.IDENT || ident.Literal != "_x" {
		t.Errorf("_x tokenized as %q/%q", ident.Type, ident.Literal)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("struct Foo $")
	var tok token.Token
	for tok = l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		if tok.Type == token.ILLEGAL {
			if tok.Lexeme != "$" {
				t.Errorf("illegal lexeme = %q, want $", tok.Lexeme)
			}
			return
		}
	}
	t.Error("no ILLEGAL token produced for $")
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("struct\nFoo")
	first := l.NextToken()
	if first.Line != 1 {
		t.Errorf("first token line = %d, want 1", first.Line)
	}
	second := l.NextToken()
	if second.Line != 2 {
		t.Errorf("second token line = %d, want 2", second.Line)
	}
	if second.Column != 1 {
		t.Errorf("second token column = %d, want 1", second.Column)
	}
}
