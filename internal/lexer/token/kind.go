package token

import "fmt"

type Kind int

const (
	// EOF
	EOF Kind = iota
	// Only produced for unterminated strings when strict strings are enabled
	ILLEGAL

	// Identifier
	IDENT

	// Literals
	STRING

	// Keywords
	MODULE
	IMPORT
	FUNC
	RETURN

	// ;
	SEMICOLON
	// {
	OPEN_CURLY
	// }
	CLOSE_CURLY
	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN
	// ,
	COMMA
	// .
	DOT
	// :
	COLON

	// ->
	ARROW
)

var KEYWORDS map[string]Kind = map[string]Kind{
	"module": MODULE,
	"import": IMPORT,
	"func":   FUNC,
	"return": RETURN,
}

var PUNCTUATION map[byte]Kind = map[byte]Kind{
	';': SEMICOLON,
	'{': OPEN_CURLY,
	'}': CLOSE_CURLY,
	'(': OPEN_PAREN,
	')': CLOSE_PAREN,
	',': COMMA,
	'.': DOT,
	':': COLON,
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "end of file"
	case ILLEGAL:
		return "ILLEGAL"
	case IDENT:
		return "identifier"
	case STRING:
		return "string literal"
	case MODULE:
		return "module"
	case IMPORT:
		return "import"
	case FUNC:
		return "func"
	case RETURN:
		return "return"
	case SEMICOLON:
		return ";"
	case OPEN_CURLY:
		return "{"
	case CLOSE_CURLY:
		return "}"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case COMMA:
		return ","
	case DOT:
		return "."
	case COLON:
		return ":"
	case ARROW:
		return "->"
	default:
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
}

// Name is the kind as shown in token listings: keywords are their
// upper-cased text and punctuation is the character itself.
func (kind Kind) Name() string {
	switch kind {
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case STRING:
		return "STRING"
	case MODULE:
		return "MODULE"
	case IMPORT:
		return "IMPORT"
	case FUNC:
		return "FUNC"
	case RETURN:
		return "RETURN"
	default:
		return kind.String()
	}
}
