package parser

import (
	"github.com/rerelang/rerec/internal/ast"
	"github.com/rerelang/rerec/internal/diagnostics"
	"github.com/rerelang/rerec/internal/lexer"
)

const defaultFilename = "test.rere"

// ParseFrom lexes and parses src with the default lexer options.
func ParseFrom(src, filename string) (*ast.Module, error) {
	module, _, err := ParseWithCollector(src, filename)
	return module, err
}

func ParseWithCollector(src, filename string) (*ast.Module, *diagnostics.Collector, error) {
	if filename == "" {
		filename = defaultFilename
	}
	collector := diagnostics.New()

	lex := lexer.New(filename, []byte(src), collector, lexer.Options{})
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, collector, err
	}

	module, err := New(tokens, collector).Parse()
	return module, collector, err
}
