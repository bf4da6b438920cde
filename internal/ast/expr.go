package ast

// StringLiteral keeps the surrounding quotes of the literal.
type StringLiteral struct {
	Value string
}

func (lit *StringLiteral) String() string             { return lit.Value }
func (lit *StringLiteral) Text() string               { return lit.Value }
func (lit *StringLiteral) Accept(v ExprVisitor) error { return v.VisitStringLiteral(lit) }
func (lit *StringLiteral) astNode()                   {}
func (lit *StringLiteral) exprNode()                  {}
