package lexer

import (
	"strconv"

	"github.com/funvibe/ferro/internal/diagnostics"
	"github.com/funvibe/ferro/internal/pipeline"
	"github.com/funvibe/ferro/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.Source)
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			ctx.Errors = append(ctx.Errors, diagnostics.NewError(
				diagnostics.ErrL001,
				tok,
				"unexpected character "+strconv.Quote(tok.Lexeme),
			))
		}
		ctx.Tokens = append(ctx.Tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
