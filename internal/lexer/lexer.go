package lexer

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/rerelang/rerec/internal/diagnostics"
	"github.com/rerelang/rerec/internal/lexer/token"
)

const eof = rune(-1)

type Options struct {
	// StrictStrings turns an unterminated string literal into an error
	// instead of emitting it with whatever was collected.
	StrictStrings bool
}

type Lexer struct {
	Collector *diagnostics.Collector
	Options   Options

	src    []byte
	offset int
	pos    token.Pos
}

func New(filename string, src []byte, collector *diagnostics.Collector, opts Options) *Lexer {
	lexer := new(Lexer)

	lexer.Collector = collector
	lexer.Options = opts
	lexer.pos = token.NewPosition(filename, 1, 1)
	lexer.src = src
	lexer.offset = 0

	return lexer
}

func NewFromFilePath(path string, collector *diagnostics.Collector, opts Options) (*Lexer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l := New(filepath.Base(path), src, collector, opts)
	return l, nil
}

// Next returns the next token. Once the source is exhausted every call
// returns an EOF token.
func (lex *Lexer) Next() *token.Token {
	for {
		character := lex.peekChar()
		if character == eof {
			return lex.consumeTokenNoLex(token.EOF, "")
		}

		switch {
		case unicode.IsSpace(character):
			lex.skipWhitespace()
		case character == '/' && lex.peekCharAt(1) == '/':
			lex.skipComment()
		case isIdentStart(character):
			return lex.getIdOrKeyword()
		case character == '"':
			return lex.getStringLit()
		case character == '-' && lex.peekCharAt(1) == '>':
			tok := lex.consumeTokenNoLex(token.ARROW, "->")
			lex.nextChar() // -
			lex.nextChar() // >
			return tok
		default:
			if character < utf8.RuneSelf {
				if kind, ok := token.PUNCTUATION[byte(character)]; ok {
					tok := lex.consumeTokenNoLex(kind, string(character))
					lex.nextChar()
					return tok
				}
			}
			// Anything else is dropped without a diagnostic.
			lex.nextChar()
		}
	}
}

// Tokenize drains the lexer. The returned slice always ends with the EOF
// token.
func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	var tokens []*token.Token
	for {
		tok := lex.Next()
		if tok.Kind == token.ILLEGAL {
			return nil, &diagnostics.LexError{Pos: tok.Pos, Message: "unterminated string literal"}
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, nil
}

func (lex *Lexer) getStringLit() *token.Token {
	tok := lex.consumeTokenNoLex(token.STRING, "")
	lex.nextChar() // "

	start := lex.offset
	for {
		ch := lex.peekChar()
		if ch == eof || ch == '"' {
			break
		}
		lex.nextChar()
	}
	body := string(lex.src[start:lex.offset])

	if lex.peekChar() != '"' {
		if lex.Options.StrictStrings {
			tok.Kind = token.ILLEGAL
			tok.Lexeme = `"` + body
			if lex.Collector != nil {
				lex.Collector.ReportAndSave(diagnostics.Diag{
					Message: fmt.Sprintf("%s: unterminated string literal", tok.Pos),
				})
			}
			return tok
		}
	} else {
		lex.nextChar() // "
	}

	tok.Lexeme = `"` + body + `"`
	return tok
}

func (lex *Lexer) getIdOrKeyword() *token.Token {
	tok := lex.consumeTokenNoLex(token.IDENT, "")
	identifier := lex.readWhile(isIdentPart)
	tok.Lexeme = string(identifier)
	if keyword, ok := token.KEYWORDS[tok.Lexeme]; ok {
		tok.Kind = keyword
	}
	return tok
}

func (lex *Lexer) consumeTokenNoLex(kind token.Kind, lexeme string) *token.Token {
	return token.New(lexeme, kind, lex.pos)
}

func (lex *Lexer) skipWhitespace() {
	lex.readWhile(unicode.IsSpace)
}

func (lex *Lexer) skipComment() {
	lex.readWhile(func(ch rune) bool { return ch != '\n' })
}

func (lex *Lexer) readWhile(isValid func(rune) bool) []byte {
	start := lex.offset

	for {
		character := lex.peekChar()
		if character == eof || !isValid(character) {
			break
		}
		lex.nextChar()
	}

	return lex.src[start:lex.offset]
}

func (lex *Lexer) nextChar() rune {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character, size := utf8.DecodeRune(lex.src[lex.offset:])
	lex.pos.Move(character)
	lex.offset += size
	return character
}

func (lex *Lexer) peekChar() rune {
	return lex.peekCharAt(0)
}

// peekCharAt looks n runes ahead of the current one without consuming.
func (lex *Lexer) peekCharAt(n int) rune {
	offset := lex.offset
	for {
		if offset >= len(lex.src) {
			return eof
		}
		character, size := utf8.DecodeRune(lex.src[offset:])
		if n == 0 {
			return character
		}
		offset += size
		n--
	}
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsNumber(ch) || ch == '_'
}
