package analyzer

import (
	"github.com/funvibe/ferro/internal/pipeline"
)

type WfProcessor struct{}

func (wp *WfProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}

	analyzer := New(ctx.SymbolTable)
	inferred, errors := analyzer.Infer(ctx.AstRoot)
	ctx.Inferred = inferred

	for _, err := range errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	ctx.Errors = append(ctx.Errors, errors...)

	return ctx
}
