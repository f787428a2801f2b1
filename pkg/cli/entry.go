package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/ferro/internal/analyzer"
	"github.com/funvibe/ferro/internal/config"
	"github.com/funvibe/ferro/internal/lexer"
	"github.com/funvibe/ferro/internal/parser"
	"github.com/funvibe/ferro/internal/pipeline"
	"github.com/funvibe/ferro/internal/prettyprinter"
)

// ProjectConfig is the parsed ferro.yaml.
type ProjectConfig struct {
	// Entry is the source file analyzed when none is given on the command
	// line. Relative to the config file's directory.
	Entry string `yaml:"entry"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

type options struct {
	verbose bool
	color   string // auto|always|never
	files   []string
}

const usage = `Usage: ferro [options] <file>

Analyzes the declarations in <file> (or stdin) and prints each header with
its inferred outlives obligations.

Options:
  -verbose         print run details
  -color=<mode>    auto, always or never (default auto)
  -help            show this help
`

// Run is the CLI entry point. Returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	opts := options{color: ""}
	for _, arg := range args {
		switch {
		case arg == "-help" || arg == "--help" || arg == "-h":
			fmt.Fprint(stdout, usage)
			return 0
		case arg == "-verbose" || arg == "--verbose":
			opts.verbose = true
		case strings.HasPrefix(arg, "-color="):
			opts.color = strings.TrimPrefix(arg, "-color=")
		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(stderr, "Unknown option: %s\n", arg)
			return 2
		default:
			opts.files = append(opts.files, arg)
		}
	}

	var proj *ProjectConfig
	if len(opts.files) == 0 {
		// With no file argument the project config may name an entry file.
		if proj = loadProjectConfig("."); proj != nil && proj.Entry != "" {
			opts.files = append(opts.files, proj.Entry)
		}
	}

	source, filePath, err := readInput(opts.files)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	if source == "" {
		return 0 // Nothing to do
	}

	if proj == nil {
		dir := "."
		if filePath != "" {
			dir = filepath.Dir(filePath)
		}
		proj = loadProjectConfig(dir)
	}
	if proj != nil && opts.color == "" && proj.Color != "" {
		opts.color = proj.Color
	}
	if opts.color == "" {
		opts.color = "auto"
	}
	colored := useColor(opts.color)

	ctx := pipeline.NewContext(source, filePath)
	processingPipeline := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&analyzer.WfProcessor{},
	)
	finalCtx := processingPipeline.Run(ctx)

	if opts.verbose {
		fmt.Fprintf(stderr, "run %s: %s\n", finalCtx.RunID, displayPath(filePath))
	}

	code := 0
	if len(finalCtx.Errors) > 0 {
		for _, err := range finalCtx.Errors {
			fmt.Fprintln(stderr, paint(err.Error(), ansiRed, colored))
		}
		code = 1
	}

	for _, name := range finalCtx.SymbolTable.Names() {
		required, ok := finalCtx.Inferred[name]
		if !ok {
			continue // declaration failed; already reported
		}
		def, _ := finalCtx.SymbolTable.Lookup(name)
		fmt.Fprintln(stdout, paint(prettyprinter.PrintHeader(def, required), ansiBold, colored))
	}

	return code
}

// loadProjectConfig reads ferro.yaml from dir, if present.
func loadProjectConfig(dir string) *ProjectConfig {
	data, err := os.ReadFile(filepath.Join(dir, config.ProjectConfigFile))
	if err != nil {
		return nil
	}
	var proj ProjectConfig
	if err := yaml.Unmarshal(data, &proj); err != nil {
		return nil
	}
	return &proj
}

func readInput(files []string) (source, filePath string, err error) {
	if len(files) == 0 {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", "", fmt.Errorf("no input: pass a file or pipe from stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil
	}

	path := files[0]
	if !isSourceFile(path) {
		return "", "", fmt.Errorf("not a source file: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading input: %w", err)
	}
	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		abs = path
	}
	return string(data), abs, nil
}

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func displayPath(filePath string) string {
	if filePath == "" {
		return "<stdin>"
	}
	return filePath
}

const (
	ansiRed  = "\x1b[31m"
	ansiBold = "\x1b[1m"
	ansiOff  = "\x1b[0m"
)

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

func paint(s, code string, colored bool) string {
	if !colored {
		return s
	}
	return code + s + ansiOff
}
