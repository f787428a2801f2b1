package targets

import (
	"testing"

	"github.com/funvibe/ferro/internal/analyzer"
	"github.com/funvibe/ferro/internal/lexer"
	"github.com/funvibe/ferro/internal/parser"
	"github.com/funvibe/ferro/internal/pipeline"
	"github.com/funvibe/ferro/internal/prettyprinter"
)

// FuzzInference runs the whole front-end over arbitrary input and checks
// that inference is deterministic: two independent runs over the same
// source must print identical headers.
func FuzzInference(f *testing.F) {
	// Seed corpus
	f.Add("struct Foo<'a, 'b> { x: &'a &'b u32 }")
	f.Add("struct Vec<T> { buf: T }\nstruct Foo<'a, U> { x: &'a Vec<U> }")
	f.Add("struct Pinned<T> { x: &'static T }")
	f.Add("enum Either<'a, L, R> { Left(&'a L), Right(&'a R) }")
	f.Add("struct List<'a, T> { next: &'a List<'a, T> }")

	f.Fuzz(func(t *testing.T, input string) {
		first := renderHeaders(input)
		second := renderHeaders(input)
		if first != second {
			t.Errorf("non-deterministic inference for %q:\n%s\nvs\n%s", input, first, second)
		}
	})
}

func renderHeaders(input string) string {
	ctx := pipeline.NewContext(input, "")
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.WfProcessor{},
	)
	ctx = p.Run(ctx)

	out := ""
	for _, name := range ctx.SymbolTable.Names() {
		required, ok := ctx.Inferred[name]
		if !ok {
			continue
		}
		def, _ := ctx.SymbolTable.Lookup(name)
		out += prettyprinter.PrintHeader(def, required) + "\n"
	}
	return out
}
