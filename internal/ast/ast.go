// Package ast defines the abstract syntax tree of a Rere module.
//
// Statements and expressions are closed sets. Each variant implements
// Accept for its visitor interface, so a new variant cannot be added
// without every visitor implementation failing to compile until it
// handles it.
package ast

type Node interface {
	astNode()
}

type Stmt interface {
	Node
	Accept(v StmtVisitor) error
	IsReturn() bool
	stmtNode()
}

type Expr interface {
	Node
	Accept(v ExprVisitor) error
	// Text is the expression as it appears in the source.
	Text() string
	exprNode()
}

type StmtVisitor interface {
	VisitCall(call *Call) error
	VisitReturn(ret *Return) error
}

type ExprVisitor interface {
	VisitStringLiteral(lit *StringLiteral) error
}
