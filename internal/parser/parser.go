package parser

import (
	"fmt"
	"strings"

	"github.com/rerelang/rerec/internal/ast"
	"github.com/rerelang/rerec/internal/diagnostics"
	"github.com/rerelang/rerec/internal/lexer/token"
)

type Parser struct {
	cursor    *cursor
	collector *diagnostics.Collector
}

func New(tokens []*token.Token, collector *diagnostics.Collector) *Parser {
	parser := new(Parser)
	parser.cursor = newCursor(tokens)
	parser.collector = collector
	return parser
}

// Parse consumes the whole token stream and returns the module it
// describes. The first error aborts the parse.
func (p *Parser) Parse() (*ast.Module, error) {
	return p.parseModule()
}

func (p *Parser) parseModule() (*ast.Module, error) {
	module := new(ast.Module)

	if _, err := p.expect(token.MODULE, "'module'"); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT, "module name")
	if err != nil {
		return nil, err
	}
	module.Name = name.Lexeme
	if _, err := p.expect(token.SEMICOLON, "';' after module name"); err != nil {
		return nil, err
	}

	for p.cursor.nextIs(token.IMPORT) {
		imp, err := p.parseImport()
		if err != nil {
			return nil, err
		}
		module.Imports = append(module.Imports, imp)
	}

	for p.cursor.nextIs(token.FUNC) {
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		module.Functions = append(module.Functions, fn)
	}

	if _, err := p.expect(token.EOF, "function declaration or end of file"); err != nil {
		return nil, err
	}

	return module, nil
}

func (p *Parser) parseImport() (string, error) {
	if _, err := p.expect(token.IMPORT, "'import'"); err != nil {
		return "", err
	}

	var path []string
	part, err := p.expect(token.IDENT, "import path")
	if err != nil {
		return "", err
	}
	path = append(path, part.Lexeme)

	for p.cursor.nextIs(token.DOT) {
		p.cursor.skip() // .
		part, err := p.expect(token.IDENT, "identifier after '.' in import path")
		if err != nil {
			return "", err
		}
		path = append(path, part.Lexeme)
	}

	if _, err := p.expect(token.SEMICOLON, "';' after import"); err != nil {
		return "", err
	}
	return strings.Join(path, "."), nil
}

func (p *Parser) parseFunction() (*ast.Function, error) {
	fn := new(ast.Function)

	if _, err := p.expect(token.FUNC, "'func'"); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT, "function name")
	if err != nil {
		return nil, err
	}
	fn.Name = name.Lexeme

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	fn.Params = params

	fn.ReturnType = ast.VoidType
	if p.cursor.nextIs(token.ARROW) {
		p.cursor.skip() // ->
		retType, err := p.expect(token.IDENT, "return type after '->'")
		if err != nil {
			return nil, err
		}
		fn.ReturnType = retType.Lexeme
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	fn.Body = body

	return fn, nil
}

func (p *Parser) parseParams() ([]ast.Param, error) {
	if _, err := p.expect(token.OPEN_PAREN, "'(' after function name"); err != nil {
		return nil, err
	}

	var params []ast.Param
	if !p.cursor.nextIs(token.CLOSE_PAREN) {
		for {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)

			if !p.cursor.nextIs(token.COMMA) {
				break
			}
			p.cursor.skip() // ,
		}
	}

	if _, err := p.expect(token.CLOSE_PAREN, "',' or ')' in parameter list"); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseParam() (ast.Param, error) {
	name, err := p.expect(token.IDENT, "parameter name")
	if err != nil {
		return ast.Param{}, err
	}
	if _, err := p.expect(token.COLON, fmt.Sprintf("':' after parameter '%s'", name.Lexeme)); err != nil {
		return ast.Param{}, err
	}
	ty, err := p.expect(token.IDENT, fmt.Sprintf("type of parameter '%s'", name.Lexeme))
	if err != nil {
		return ast.Param{}, err
	}
	return ast.Param{Name: name.Lexeme, Type: ty.Lexeme}, nil
}

func (p *Parser) parseBody() ([]ast.Stmt, error) {
	if _, err := p.expect(token.OPEN_CURLY, "'{' before function body"); err != nil {
		return nil, err
	}

	var statements []ast.Stmt
	for !p.cursor.nextIs(token.CLOSE_CURLY) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if _, err := p.expect(token.CLOSE_CURLY, "'}'"); err != nil {
		return nil, err
	}
	return statements, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	tok := p.cursor.peek()
	switch {
	case tok.Kind == token.RETURN:
		return p.parseReturn()
	case tok.Kind == token.IDENT && p.cursor.peek1().Kind == token.OPEN_PAREN:
		return p.parseCall()
	default:
		return nil, p.syntaxError("", tok)
	}
}

func (p *Parser) parseReturn() (*ast.Return, error) {
	if _, err := p.expect(token.RETURN, "'return'"); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, "';' after return value"); err != nil {
		return nil, err
	}
	return &ast.Return{Value: value}, nil
}

func (p *Parser) parseCall() (*ast.Call, error) {
	name, err := p.expect(token.IDENT, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OPEN_PAREN, "'('"); err != nil {
		return nil, err
	}

	var args []ast.Expr
	if !p.cursor.nextIs(token.CLOSE_PAREN) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if !p.cursor.nextIs(token.COMMA) {
				break
			}
			p.cursor.skip() // ,
		}
	}

	if _, err := p.expect(token.CLOSE_PAREN, "',' or ')' in argument list"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, "';' after call"); err != nil {
		return nil, err
	}
	return &ast.Call{Name: name.Lexeme, Args: args}, nil
}

// parseExpr only understands string literals. Anything else is reported as
// an unsupported feature rather than a syntax error.
func (p *Parser) parseExpr() (ast.Expr, error) {
	tok := p.cursor.peek()
	if tok.Kind != token.STRING {
		err := &diagnostics.UnsupportedFeatureError{
			Feature: "expressions other than string literals",
			Found:   tok,
		}
		p.report(err)
		return nil, err
	}
	p.cursor.skip()
	return &ast.StringLiteral{Value: tok.Lexeme}, nil
}

func (p *Parser) expect(expectedKind token.Kind, expected string) (*token.Token, error) {
	tok := p.cursor.peek()
	if tok.Kind != expectedKind {
		return tok, p.syntaxError(expected, tok)
	}
	p.cursor.skip()
	return tok, nil
}

func (p *Parser) syntaxError(expected string, found *token.Token) error {
	err := &diagnostics.SyntaxError{Expected: expected, Found: found}
	p.report(err)
	return err
}

func (p *Parser) report(err error) {
	if p.collector == nil {
		return
	}
	p.collector.ReportAndSave(diagnostics.Diag{Message: err.Error()})
}
