package ast

import "fmt"

const VoidType = "void"

type Function struct {
	Name       string
	Params     []Param
	ReturnType string
	Body       []Stmt
}

func (fn *Function) String() string {
	return fmt.Sprintf(
		"FUNC: %s\nParams: %v\nReturnType: %s\nBody: %v\n",
		fn.Name,
		fn.Params,
		fn.ReturnType,
		fn.Body,
	)
}
func (fn *Function) astNode() {}
