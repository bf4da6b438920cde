package parser

import (
	"github.com/rerelang/rerec/internal/lexer/token"
)

type cursor struct {
	offset int
	tokens []*token.Token
	eof    *token.Token
}

// newCursor walks tokens. A stream that stops without an EOF token behaves
// as if it ended with one.
func newCursor(tokens []*token.Token) *cursor {
	eof := token.New("", token.EOF, token.Pos{})
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		if last.Kind == token.EOF {
			eof = last
		} else {
			eof.Pos = last.Pos
		}
	}
	return &cursor{offset: 0, tokens: tokens, eof: eof}
}

func (cursor *cursor) peek() *token.Token {
	return cursor.peekAt(0)
}

func (cursor *cursor) peek1() *token.Token {
	return cursor.peekAt(1)
}

func (cursor *cursor) peekAt(n int) *token.Token {
	if cursor.offset+n >= len(cursor.tokens) {
		return cursor.eof
	}
	return cursor.tokens[cursor.offset+n]
}

func (cursor *cursor) next() *token.Token {
	token := cursor.peek()
	if !cursor.isOutOfBound() {
		cursor.offset++
	}
	return token
}

func (cursor *cursor) skip() {
	cursor.next()
}

func (cursor *cursor) nextIs(expectedKind token.Kind) bool {
	return cursor.peek().Kind == expectedKind
}

func (cursor *cursor) isOutOfBound() bool {
	return cursor.offset >= len(cursor.tokens)
}
