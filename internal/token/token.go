package token

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT    TokenType = "IDENT"    // Foo, Vec, u32
	LIFETIME TokenType = "LIFETIME" // 'a, 'static (Literal holds the name without the quote)

	// Punctuation
	LT         TokenType = "<"
	GT         TokenType = ">"
	COMMA      TokenType = ","
	COLON      TokenType = ":"
	PATHSEP    TokenType = "::"
	LBRACE     TokenType = "{"
	RBRACE     TokenType = "}"
	LPAREN     TokenType = "("
	RPAREN     TokenType = ")"
	AMP        TokenType = "&"
	PLUS       TokenType = "+"
	ARROW      TokenType = "->"
	UNDERSCORE TokenType = "_"

	// Keywords
	STRUCT TokenType = "STRUCT"
	ENUM   TokenType = "ENUM"
	FN     TokenType = "FN"
	FOR    TokenType = "FOR"
	AS     TokenType = "AS"
	WHERE  TokenType = "WHERE"
	MUT    TokenType = "MUT"
)

type Token struct {
	Type    TokenType
	Lexeme  string // the raw source text
	Literal string // the interpreted value (lifetime name without quote, etc.)
	Line    int
	Column  int
}

var keywords = map[string]TokenType{
	"struct": STRUCT,
	"enum":   ENUM,
	"fn":     FN,
	"for":    FOR,
	"as":     AS,
	"where":  WHERE,
	"mut":    MUT,
}

// LookupIdent returns the keyword token type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}
