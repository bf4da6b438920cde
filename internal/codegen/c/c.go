// Package c lowers a parsed Rere module to a C11 translation unit.
package c

import (
	"fmt"
	"strings"

	"github.com/rerelang/rerec/internal/ast"
	"github.com/rerelang/rerec/internal/diagnostics"
)

const indentUnit = "    "

type Options struct {
	// StrictImports rejects imports that have no runtime declarations
	// instead of ignoring them.
	StrictImports bool
}

// Codegen holds the state of one generation pass. Generate resets it, so a
// value can be reused but not shared between goroutines.
type Codegen struct {
	opts   Options
	output []string
	indent int
}

func NewCG(opts Options) *Codegen {
	return &Codegen{opts: opts}
}

func (c *Codegen) Generate(module *ast.Module) (string, error) {
	c.output = nil
	c.indent = 0

	c.emit("#include <stdio.h>")
	c.emit("#include <stdlib.h>")
	c.emit("")

	for _, imp := range module.Imports {
		decls, ok := runtimeImports[imp]
		if !ok {
			if c.opts.StrictImports {
				return "", &diagnostics.UnsupportedFeatureError{
					Feature: fmt.Sprintf("import of unknown module %q", imp),
				}
			}
			continue
		}
		for _, decl := range decls {
			c.emit(decl)
		}
	}

	c.emit("")

	for _, fn := range module.Functions {
		err := c.generateFunction(fn)
		if err != nil {
			return "", err
		}
	}

	return c.code(), nil
}

func (c *Codegen) generateFunction(fn *ast.Function) error {
	params := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		params[i] = fmt.Sprintf("%s %s", CType(param.Type), param.Name)
	}

	c.emit(fmt.Sprintf("%s %s(%s) {", CType(fn.ReturnType), fn.Name, strings.Join(params, ", ")))
	c.indent++

	for _, stmt := range fn.Body {
		err := stmt.Accept(c)
		if err != nil {
			return err
		}
	}

	c.indent--
	c.emit("}")
	c.emit("")
	return nil
}

func (c *Codegen) VisitCall(call *ast.Call) error {
	if call.Name == "print" {
		if len(call.Args) == 0 {
			return &diagnostics.UnsupportedFeatureError{Feature: "print without a format string"}
		}
		// Only the format string is forwarded.
		format, err := c.generateExpr(call.Args[0])
		if err != nil {
			return err
		}
		c.emit(fmt.Sprintf("printf(%s);", format))
		return nil
	}

	args := make([]string, len(call.Args))
	for i, arg := range call.Args {
		text, err := c.generateExpr(arg)
		if err != nil {
			return err
		}
		args[i] = text
	}
	c.emit(fmt.Sprintf("%s(%s);", call.Name, strings.Join(args, ", ")))
	return nil
}

func (c *Codegen) VisitReturn(ret *ast.Return) error {
	value, err := c.generateExpr(ret.Value)
	if err != nil {
		return err
	}
	c.emit(fmt.Sprintf("return %s;", value))
	return nil
}

func (c *Codegen) generateExpr(expr ast.Expr) (string, error) {
	lowering := new(exprLowering)
	err := expr.Accept(lowering)
	if err != nil {
		return "", err
	}
	return lowering.text, nil
}

type exprLowering struct {
	text string
}

func (l *exprLowering) VisitStringLiteral(lit *ast.StringLiteral) error {
	l.text = lit.Value
	return nil
}

func (c *Codegen) emit(line string) {
	c.output = append(c.output, strings.Repeat(indentUnit, c.indent)+line)
}

func (c *Codegen) code() string {
	return strings.Join(c.output, "\n")
}
