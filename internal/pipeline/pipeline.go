package pipeline

import (
	"github.com/google/uuid"

	"github.com/funvibe/ferro/internal/ast"
	"github.com/funvibe/ferro/internal/config"
	"github.com/funvibe/ferro/internal/diagnostics"
	"github.com/funvibe/ferro/internal/outlives"
	"github.com/funvibe/ferro/internal/symbols"
	"github.com/funvibe/ferro/internal/token"
)

// Processor is one stage of the front-end.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries the artifacts of a run between stages.
type PipelineContext struct {
	RunID    string // unique per run; shown in verbose output
	Source   string
	FilePath string

	Tokens      []token.Token
	AstRoot     *ast.Program
	SymbolTable *symbols.SymbolTable

	// Inferred maps each declaration name to the outlives obligations its
	// header must carry. Populated by the well-formedness stage.
	Inferred map[string]*outlives.RequiredPredicates

	Errors []*diagnostics.DiagnosticError
}

// NewContext prepares a context for one source file.
func NewContext(source, filePath string) *PipelineContext {
	return &PipelineContext{
		RunID:       newRunID(),
		Source:      source,
		FilePath:    filePath,
		SymbolTable: symbols.NewSymbolTable(),
		Inferred:    make(map[string]*outlives.RequiredPredicates),
	}
}

// newRunID is deterministic in test mode so golden output stays stable.
func newRunID() string {
	if config.IsTestMode {
		return "test-run"
	}
	return uuid.NewString()
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from all stages.
	}
	return ctx
}
