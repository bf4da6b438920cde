package driver

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"

	"github.com/rerelang/rerec/internal/ast"
	"github.com/rerelang/rerec/internal/lexer/token"
)

var astDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

func dumpTokens(w io.Writer, tokens []*token.Token) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Lexeme", "Position"})
	table.SetAutoWrapText(false)
	for _, tok := range tokens {
		table.Append([]string{tok.Kind.Name(), tok.Lexeme, tok.Pos.String()})
	}
	table.Render()
}

func dumpAST(w io.Writer, module *ast.Module) {
	fmt.Fprintln(w, module)
	astDumper.Fdump(w, module)
}

func writeStringToFile(fileName, content string) error {
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	if err != nil {
		return err
	}

	return nil
}
