package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rerelang/rerec/internal/ast"
	"github.com/rerelang/rerec/internal/diagnostics"
	"github.com/rerelang/rerec/internal/lexer/token"
)

func str(value string) *ast.StringLiteral {
	return &ast.StringLiteral{Value: value}
}

func TestModuleDecl(t *testing.T) {
	tests := []struct {
		input    string
		expected *ast.Module
	}{
		{
			input:    "module m;",
			expected: &ast.Module{Name: "m"},
		},
		{
			input: `module m; func f() { return "x"; }`,
			expected: &ast.Module{
				Name: "m",
				Functions: []*ast.Function{
					{
						Name:       "f",
						ReturnType: "void",
						Body:       []ast.Stmt{&ast.Return{Value: str(`"x"`)}},
					},
				},
			},
		},
		{
			input: "module hello;\nimport std.io;\nimport a.b.c;\nimport single;",
			expected: &ast.Module{
				Name:    "hello",
				Imports: []string{"std.io", "a.b.c", "single"},
			},
		},
		{
			input: `
module hello;
import std.io;

// entry point
func main() -> int {
    print("Hello, %s!\n", "world");
    greet();
    return "0";
}

func greet(name: ptr, n: word, name: mystery) {
    puts("hi");
}
`,
			expected: &ast.Module{
				Name:    "hello",
				Imports: []string{"std.io"},
				Functions: []*ast.Function{
					{
						Name:       "main",
						ReturnType: "int",
						Body: []ast.Stmt{
							&ast.Call{Name: "print", Args: []ast.Expr{str(`"Hello, %s!\n"`), str(`"world"`)}},
							&ast.Call{Name: "greet"},
							&ast.Return{Value: str(`"0"`)},
						},
					},
					{
						Name: "greet",
						Params: []ast.Param{
							{Name: "name", Type: "ptr"},
							{Name: "n", Type: "word"},
							{Name: "name", Type: "mystery"},
						},
						ReturnType: "void",
						Body: []ast.Stmt{
							&ast.Call{Name: "puts", Args: []ast.Expr{str(`"hi"`)}},
						},
					},
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestModuleDecl(%q)", test.input), func(t *testing.T) {
			module, err := ParseFrom(test.input, "")
			require.NoError(t, err)
			if diff := cmp.Diff(test.expected, module); diff != "" {
				t.Errorf("module mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFnDecl(t *testing.T) {
	tests := []struct {
		input string
		check func(t *testing.T, fn *ast.Function)
	}{
		{
			input: "func do_nothing() {}",
			check: func(t *testing.T, fn *ast.Function) {
				assert.Equal(t, "do_nothing", fn.Name)
				assert.Nil(t, fn.Params)
				assert.Equal(t, ast.VoidType, fn.ReturnType)
				assert.Empty(t, fn.Body)
			},
		},
		{
			input: "func one(a: int) {}",
			check: func(t *testing.T, fn *ast.Function) {
				assert.Equal(t, []ast.Param{{Name: "a", Type: "int"}}, fn.Params)
			},
		},
		{
			input: "func two(a: int, b: word) -> ptr {}",
			check: func(t *testing.T, fn *ast.Function) {
				assert.Len(t, fn.Params, 2)
				assert.Equal(t, "ptr", fn.ReturnType)
			},
		},
		{
			input: "func unknown() -> mystery {}",
			check: func(t *testing.T, fn *ast.Function) {
				assert.Equal(t, "mystery", fn.ReturnType)
			},
		},
		{
			input: "func only_calls() { a(); b(\"1\"); c(\"1\", \"2\"); }",
			check: func(t *testing.T, fn *ast.Function) {
				require.Len(t, fn.Body, 3)
				for i, stmt := range fn.Body {
					call, ok := stmt.(*ast.Call)
					require.True(t, ok, "statement %d is %T", i, stmt)
					assert.Len(t, call.Args, i)
					assert.False(t, call.IsReturn())
				}
			},
		},
		{
			input: "func many_returns() { return \"a\"; return \"b\"; }",
			check: func(t *testing.T, fn *ast.Function) {
				require.Len(t, fn.Body, 2)
				assert.True(t, fn.Body[1].IsReturn())
			},
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestFnDecl('%s')", test.input), func(t *testing.T) {
			module, err := ParseFrom("module test;\n"+test.input, "")
			require.NoError(t, err)
			require.Len(t, module.Functions, 1)
			test.check(t, module.Functions[0])
		})
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		found    token.Kind
	}{
		{"", "'module'", token.EOF},
		{"func f() {}", "'module'", token.FUNC},
		{"module;", "module name", token.SEMICOLON},
		{"module func;", "module name", token.FUNC},
		{"module m", "';' after module name", token.EOF},
		{"module m; import;", "import path", token.SEMICOLON},
		{"module m; import std.;", "identifier after '.' in import path", token.SEMICOLON},
		{"module m; import std.io", "';' after import", token.EOF},
		{"module m; import std io;", "';' after import", token.IDENT},
		{"module m; func () {}", "function name", token.OPEN_PAREN},
		{"module m; func f {}", "'(' after function name", token.OPEN_CURLY},
		{"module m; func f(a: int,) { }", "parameter name", token.CLOSE_PAREN},
		{"module m; func f(,) { }", "parameter name", token.COMMA},
		{"module m; func f(a int) {}", "':' after parameter 'a'", token.IDENT},
		{"module m; func f(a:) {}", "type of parameter 'a'", token.CLOSE_PAREN},
		{"module m; func f(a: int b: int) {}", "',' or ')' in parameter list", token.IDENT},
		{"module m; func f(func: int) {}", "parameter name", token.FUNC},
		{"module m; func f(", "parameter name", token.EOF},
		{"module m; func f() -> {}", "return type after '->'", token.OPEN_CURLY},
		{"module m; func f() int {}", "'{' before function body", token.IDENT},
		{"module m; func f()", "'{' before function body", token.EOF},
		{"module m; func f() { print(\"a\") }", "';' after call", token.CLOSE_CURLY},
		{"module m; func f() { print(\"a\" \"b\"); }", "',' or ')' in argument list", token.STRING},
		{"module m; func f() { return \"a\" }", "';' after return value", token.CLOSE_CURLY},
		{"module m; func f() {} import a;", "function declaration or end of file", token.IMPORT},
		{"module m; func f() {} extra", "function declaration or end of file", token.IDENT},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestSyntaxErrors(%q)", test.input), func(t *testing.T) {
			module, collector, err := ParseWithCollector(test.input, "")
			require.Error(t, err)
			assert.Nil(t, module)

			var syntaxErr *diagnostics.SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "expected *SyntaxError, got %T: %v", err, err)
			assert.Equal(t, test.expected, syntaxErr.Expected)
			assert.Equal(t, test.found, syntaxErr.Found.Kind)

			require.Len(t, collector.Diags, 1)
			assert.Equal(t, err.Error(), collector.Diags[0].Message)
		})
	}
}

func TestUnexpectedStatement(t *testing.T) {
	tests := []struct {
		input string
		found token.Kind
	}{
		{"module m; func f() { x; }", token.IDENT},
		{"module m; func f() { { } }", token.OPEN_CURLY},
		{"module m; func f() { module; }", token.MODULE},
		{"module m; func f() { \"s\"; }", token.STRING},
		{"module m; func f() { print(\"a\");", token.EOF},
		{"module m; func f() {", token.EOF},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestUnexpectedStatement(%q)", test.input), func(t *testing.T) {
			_, err := ParseFrom(test.input, "")

			var syntaxErr *diagnostics.SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "expected *SyntaxError, got %T: %v", err, err)
			assert.Empty(t, syntaxErr.Expected)
			assert.Equal(t, test.found, syntaxErr.Found.Kind)
			assert.Contains(t, err.Error(), "unexpected token")
		})
	}
}

func TestUnsupportedExpressions(t *testing.T) {
	tests := []string{
		`module m; func f() { return 1 + 2; }`,
		`module m; func f() { return x; }`,
		`module m; func f() { return; }`,
		`module m; func f() { print(x); }`,
		`module m; func f() { print("a",); }`,
		`module m; func f() { print("a", g()); }`,
	}

	for _, input := range tests {
		t.Run(fmt.Sprintf("TestUnsupportedExpressions(%q)", input), func(t *testing.T) {
			_, err := ParseFrom(input, "")
			require.Error(t, err)

			var unsupported *diagnostics.UnsupportedFeatureError
			require.True(t, errors.As(err, &unsupported), "expected *UnsupportedFeatureError, got %T: %v", err, err)

			var syntaxErr *diagnostics.SyntaxError
			assert.False(t, errors.As(err, &syntaxErr))
		})
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := ParseFrom("module m;\nfunc f(a: int,) { }", "pos.rere")
	require.Error(t, err)
	assert.Equal(t, "pos.rere:2:15: expected parameter name, not ')'", err.Error())
}

func TestTokensWithoutEOF(t *testing.T) {
	pos := token.Pos{Filename: "x.rere", Line: 1, Column: 1}
	tokens := []*token.Token{
		token.New("module", token.MODULE, pos),
		token.New("m", token.IDENT, pos),
		token.New(";", token.SEMICOLON, pos),
	}

	module, err := New(tokens, nil).Parse()
	require.NoError(t, err)
	assert.Equal(t, "m", module.Name)

	_, err = New(nil, nil).Parse()
	var syntaxErr *diagnostics.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, token.EOF, syntaxErr.Found.Kind)
}
