// Package driver wires the compilation pipeline: it reads a source file,
// lexes, parses and lowers it to C, writes the C file next to the input and
// hands it to the native builder.
package driver

import (
	"fmt"
	"io"
	"os"

	"github.com/rerelang/rerec/internal/ast"
	"github.com/rerelang/rerec/internal/codegen/c"
	"github.com/rerelang/rerec/internal/config"
	"github.com/rerelang/rerec/internal/diagnostics"
	"github.com/rerelang/rerec/internal/lexer"
	"github.com/rerelang/rerec/internal/logger"
	"github.com/rerelang/rerec/internal/parser"
	"github.com/rerelang/rerec/internal/toolchain"
)

type Compiler struct {
	Config  config.Config
	Builder toolchain.NativeBuilder
	// Verbose dumps the tokens, the AST and the build command to Stdout.
	Verbose bool
	Stdout  io.Writer

	Collector *diagnostics.Collector
}

func New(cfg config.Config, builder toolchain.NativeBuilder) *Compiler {
	return &Compiler{
		Config:    cfg,
		Builder:   builder,
		Stdout:    os.Stdout,
		Collector: diagnostics.New(),
	}
}

// Result describes the files produced by a successful run.
type Result struct {
	CFile  string
	Output string
	// Diagnostic is what the native compiler printed, if it ran.
	Diagnostic string
}

// Build compiles path to C and, unless the configuration asks for C only,
// to an executable.
func (cp *Compiler) Build(path string) (*Result, error) {
	loc, err := ast.LocFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	cfile := loc.WithExt(".c")
	if cfile == loc.Path {
		return nil, fmt.Errorf("input %s would be overwritten by the generated C file", loc.Path)
	}

	src, err := os.ReadFile(loc.Path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	code, err := cp.CompileToC(loc.Name, src)
	if err != nil {
		return nil, err
	}

	result := &Result{CFile: cfile}
	if err := writeStringToFile(result.CFile, code); err != nil {
		return nil, fmt.Errorf("writing %s: %w", result.CFile, err)
	}
	logger.LogPhase("wrote", "file", result.CFile)

	if cp.Config.Build.EmitCOnly {
		if cp.Verbose {
			fmt.Fprintf(cp.Stdout, "Generated C code saved to %s\n", result.CFile)
		}
		return result, nil
	}

	result.Output = cp.Config.Build.Output
	var objects []string
	if cp.Config.Build.Runtime != "" {
		objects = append(objects, cp.Config.Build.Runtime)
	}

	sources := []string{result.CFile}
	logger.Info("building", "output", result.Output, "runtime", cp.Config.Build.Runtime)
	if cp.Verbose {
		if cl, ok := cp.Builder.(commandLiner); ok {
			fmt.Fprintf(cp.Stdout, "Executing: %s\n", cl.CommandLine(sources, objects, result.Output))
		}
	}
	diag, err := cp.Builder.Compile(sources, objects, result.Output)
	result.Diagnostic = diag
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(cp.Stdout, "Successfully compiled to %s\n", result.Output)
	return result, nil
}

// commandLiner is implemented by builders that can show the command they run.
type commandLiner interface {
	CommandLine(sources, objects []string, output string) string
}

// CompileToC runs the front end and the C generator over src. filename is
// only used for positions.
func (cp *Compiler) CompileToC(filename string, src []byte) (string, error) {
	lex := lexer.New(filename, src, cp.collector(), lexer.Options{
		StrictStrings: cp.Config.Lexer.StrictStrings,
	})
	tokens, err := lex.Tokenize()
	if err != nil {
		return "", err
	}
	logger.LogPhase("lexed", "tokens", len(tokens))
	if cp.Verbose {
		dumpTokens(cp.Stdout, tokens)
	}

	module, err := parser.New(tokens, cp.collector()).Parse()
	if err != nil {
		return "", err
	}
	logger.LogPhase("parsed", "module", module.Name, "functions", len(module.Functions))
	if cp.Verbose {
		dumpAST(cp.Stdout, module)
	}

	code, err := c.NewCG(c.Options{StrictImports: cp.Config.Codegen.StrictImports}).Generate(module)
	if err != nil {
		return "", err
	}
	logger.LogPhase("generated", "bytes", len(code))
	return code, nil
}

func (cp *Compiler) collector() *diagnostics.Collector {
	if cp.Collector == nil {
		cp.Collector = diagnostics.New()
	}
	return cp.Collector
}
