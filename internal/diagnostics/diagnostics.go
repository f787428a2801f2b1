package diagnostics

import (
	"fmt"
	"strings"

	"github.com/funvibe/ferro/internal/token"
)

// Error codes. Stable identifiers: tests and tooling match on them.
const (
	ErrL001 = "L001" // unexpected character

	ErrP001 = "P001" // unexpected token
	ErrP002 = "P002" // expected a specific token
	ErrP003 = "P003" // malformed generic parameter list

	ErrW001 = "W001" // internal consistency failure during outlives inference
	ErrW002 = "W002" // duplicate declaration
	ErrW003 = "W003" // unknown type name
	ErrW004 = "W004" // wrong number of generic arguments
	ErrW005 = "W005" // unbound lifetime name
	ErrW006 = "W006" // inference placeholder in a declaration
)

// DiagnosticError is a positioned, coded error surfaced to the user.
type DiagnosticError struct {
	Code    string
	Message string
	Line    int
	Column  int
	File    string
}

func (e *DiagnosticError) Error() string {
	pos := fmt.Sprintf("%d:%d", e.Line, e.Column)
	if e.File != "" {
		pos = e.File + ":" + pos
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, pos, e.Message)
}

// NewError builds a diagnostic at the position of tok. Multiple message
// parts are joined with ": ".
func NewError(code string, tok token.Token, parts ...string) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: strings.Join(parts, ": "),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}
