package ast

import "fmt"

// Param is a function parameter. Names are not checked for uniqueness.
type Param struct {
	Name string
	Type string
}

func (param Param) String() string {
	return fmt.Sprintf("%s: %s", param.Name, param.Type)
}
