package diagnostics

import (
	"fmt"
	"strings"

	"github.com/rerelang/rerec/internal/lexer/token"
)

// LexError is only reported when the lexer runs with strict strings.
type LexError struct {
	Pos     token.Pos
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func (e *LexError) Is(target error) bool { return target == COMPILER_ERROR_FOUND }

// SyntaxError is raised when the current token does not match the construct
// the parser expected.
type SyntaxError struct {
	Expected string
	Found    *token.Token
}

func (e *SyntaxError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%s: unexpected token %s", e.Found.Pos, describe(e.Found))
	}
	return fmt.Sprintf("%s: expected %s, not %s", e.Found.Pos, e.Expected, describe(e.Found))
}

func (e *SyntaxError) Is(target error) bool { return target == COMPILER_ERROR_FOUND }

// UnsupportedFeatureError marks input that may be sensible but lies outside
// the implemented subset of the language.
type UnsupportedFeatureError struct {
	Feature string
	Found   *token.Token
}

func (e *UnsupportedFeatureError) Error() string {
	if e.Found == nil {
		return fmt.Sprintf("unsupported feature: %s", e.Feature)
	}
	return fmt.Sprintf("%s: unsupported feature: %s (found %s)", e.Found.Pos, e.Feature, describe(e.Found))
}

func (e *UnsupportedFeatureError) Is(target error) bool { return target == COMPILER_ERROR_FOUND }

// ExternalToolError wraps a failed run of the native toolchain.
type ExternalToolError struct {
	Tool   string
	Output string
	Err    error
}

func (e *ExternalToolError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		// keep the error on a single line
		msg += ": " + strings.ReplaceAll(out, "\n", "; ")
	}
	return msg
}

func (e *ExternalToolError) Unwrap() error { return e.Err }

func describe(tok *token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.IDENT, token.STRING, token.ILLEGAL:
		return fmt.Sprintf("%s %s", tok.Kind, tok.Lexeme)
	}
	return fmt.Sprintf("'%s'", tok.Kind)
}
