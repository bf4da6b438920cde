package ast

import (
	"fmt"
	"strings"
)

// Call is a bare function call statement.
type Call struct {
	Name string
	Args []Expr
}

func (call *Call) String() string {
	args := make([]string, len(call.Args))
	for i, arg := range call.Args {
		args[i] = arg.Text()
	}
	return fmt.Sprintf("CALL: %s(%s)", call.Name, strings.Join(args, ", "))
}
func (call *Call) Accept(v StmtVisitor) error { return v.VisitCall(call) }
func (call *Call) IsReturn() bool             { return false }
func (call *Call) astNode()                   {}
func (call *Call) stmtNode()                  {}

type Return struct {
	Value Expr
}

func (ret *Return) String() string {
	return fmt.Sprintf("RETURN: %s", ret.Value.Text())
}
func (ret *Return) Accept(v StmtVisitor) error { return v.VisitReturn(ret) }
func (ret *Return) IsReturn() bool             { return true }
func (ret *Return) astNode()                   {}
func (ret *Return) stmtNode()                  {}
