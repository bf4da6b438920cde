package lexer

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rerelang/rerec/internal/diagnostics"
	"github.com/rerelang/rerec/internal/lexer/token"
)

const filename = "test.rere"

func tokenize(t *testing.T, input string, opts Options) []*token.Token {
	t.Helper()
	lex := New(filename, []byte(input), diagnostics.New(), opts)
	tokens, err := lex.Tokenize()
	require.NoError(t, err)
	return tokens
}

func kindsOf(tokens []*token.Token) []token.Kind {
	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

type tokenKindTest struct {
	lexeme string
	kind   token.Kind
}

func TestTokenKinds(t *testing.T) {
	tests := []*tokenKindTest{
		{"module", token.MODULE},
		{"import", token.IMPORT},
		{"func", token.FUNC},
		{"return", token.RETURN},
		{"main", token.IDENT},
		{"_private", token.IDENT},
		{"std_io2", token.IDENT},
		{"funcs", token.IDENT},
		{"Module", token.IDENT},
		{`"hello"`, token.STRING},
		{";", token.SEMICOLON},
		{"{", token.OPEN_CURLY},
		{"}", token.CLOSE_CURLY},
		{"(", token.OPEN_PAREN},
		{")", token.CLOSE_PAREN},
		{",", token.COMMA},
		{".", token.DOT},
		{":", token.COLON},
		{"->", token.ARROW},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestTokenKind(%q)", test.lexeme), func(t *testing.T) {
			tokens := tokenize(t, test.lexeme, Options{})

			require.Len(t, tokens, 2)
			assert.Equal(t, token.EOF, tokens[1].Kind)
			assert.Equal(t, test.kind, tokens[0].Kind)
			assert.Equal(t, test.lexeme, tokens[0].Lexeme)
		})
	}
}

func TestKeywordAlwaysWinsOverIdentifier(t *testing.T) {
	tokens := tokenize(t, "print(func) module.return", Options{})
	assert.Equal(t, []token.Kind{
		token.IDENT, token.OPEN_PAREN, token.FUNC, token.CLOSE_PAREN,
		token.MODULE, token.DOT, token.RETURN, token.EOF,
	}, kindsOf(tokens))
}

func TestSkippedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"empty", "", []token.Kind{token.EOF}},
		{"whitespace", " \t\r\n\v\f", []token.Kind{token.EOF}},
		{"comment only", "// nothing here", []token.Kind{token.EOF}},
		{"comment then code", "// c\n;", []token.Kind{token.SEMICOLON, token.EOF}},
		{"code then comment", "; // trailing ( )", []token.Kind{token.SEMICOLON, token.EOF}},
		{"single slash", "a / b", []token.Kind{token.IDENT, token.IDENT, token.EOF}},
		{"digits", "1 + 23", []token.Kind{token.EOF}},
		{"lone minus and greater", "- > = ! @ #", []token.Kind{token.EOF}},
		{"greater then minus", ">-", []token.Kind{token.EOF}},
		{"digits after identifier", "x1 2y", []token.Kind{token.IDENT, token.IDENT, token.EOF}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, kindsOf(tokenize(t, test.input, Options{})))
		})
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		input  string
		lexeme string
	}{
		{`""`, `""`},
		{`"hello, world"`, `"hello, world"`},
		{`"a\nb"`, `"a\nb"`},
		{`"// not a comment"`, `"// not a comment"`},
		{"\"multi\nline\"", "\"multi\nline\""},
		{`"unterminated`, `"unterminated"`},
		{`"`, `""`},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestStringLiteral(%q)", test.input), func(t *testing.T) {
			tokens := tokenize(t, test.input, Options{})
			require.Len(t, tokens, 2)
			assert.Equal(t, token.STRING, tokens[0].Kind)
			assert.Equal(t, test.lexeme, tokens[0].Lexeme)
		})
	}
}

func TestStrictStrings(t *testing.T) {
	collector := diagnostics.New()
	lex := New(filename, []byte(`print("abc`), collector, Options{StrictStrings: true})

	tokens, err := lex.Tokenize()
	require.Error(t, err)
	assert.Nil(t, tokens)

	var lexErr *diagnostics.LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, token.Pos{Filename: filename, Line: 1, Column: 7}, lexErr.Pos)
	assert.Len(t, collector.Diags, 1)

	// terminated strings are unaffected
	tokens = tokenize(t, `print("abc")`, Options{StrictStrings: true})
	assert.Equal(t, `"abc"`, tokens[2].Lexeme)
}

func TestTokenPos(t *testing.T) {
	tests := []struct {
		input     string
		positions []token.Pos
	}{
		{";", []token.Pos{
			{Filename: filename, Line: 1, Column: 1},  // ;
			{Filename: filename, Line: 1, Column: 2}}, // eof
		},
		{";\n;", []token.Pos{
			{Filename: filename, Line: 1, Column: 1},  // ;
			{Filename: filename, Line: 2, Column: 1},  // ;
			{Filename: filename, Line: 2, Column: 2}}, // eof
		},
		{"func\nhello world\n;", []token.Pos{
			{Filename: filename, Line: 1, Column: 1},  // func
			{Filename: filename, Line: 2, Column: 1},  // hello
			{Filename: filename, Line: 2, Column: 7},  // world
			{Filename: filename, Line: 3, Column: 1},  // ;
			{Filename: filename, Line: 3, Column: 2}}, // eof
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestTokenPos(%q)", test.input), func(t *testing.T) {
			tokens := tokenize(t, test.input, Options{})
			require.Len(t, tokens, len(test.positions))
			for i, tok := range tokens {
				assert.Equal(t, test.positions[i], tok.Pos, "token %d (%s)", i, tok)
			}
		})
	}
}

func TestNextAfterEOF(t *testing.T) {
	lex := New(filename, []byte("x"), nil, Options{})
	assert.Equal(t, token.IDENT, lex.Next().Kind)
	assert.Equal(t, token.EOF, lex.Next().Kind)
	assert.Equal(t, token.EOF, lex.Next().Kind)
}

// Concatenating the lexemes reproduces the source once whitespace and
// comments are removed from both.
func TestTokenSkeletonRoundTrip(t *testing.T) {
	sources := []string{
		"module hello;",
		"module m;\nimport std.io;\n\nfunc main() -> int {\n    print(\"Hello, World!\");\n    return \"0\";\n}\n",
		"func f(a: int, b: word, c: ptr) { g(\"x\", \"y\"); }",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			var b strings.Builder
			for _, tok := range tokenize(t, src, Options{}) {
				b.WriteString(tok.Lexeme)
			}
			assert.Equal(t, stripSpace(src), b.String())
		})
	}
}

func stripSpace(src string) string {
	var b strings.Builder
	inString := false
	for _, ch := range src {
		if ch == '"' {
			inString = !inString
		}
		if !inString && (ch == ' ' || ch == '\n' || ch == '\t') {
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func TestNewFromFilePath(t *testing.T) {
	_, err := NewFromFilePath("does/not/exist.rere", diagnostics.New(), Options{})
	assert.Error(t, err)
}
