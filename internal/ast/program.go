package ast

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Module is the root of every parsed file. Imports and Functions keep
// declaration order.
type Module struct {
	Name      string
	Imports   []string
	Functions []*Function
}

func (m *Module) String() string {
	return fmt.Sprintf("MODULE: %s | Imports: %v | Functions: %d", m.Name, m.Imports, len(m.Functions))
}
func (m *Module) astNode() {}

type Loc struct {
	Name string
	Dir  string
	Path string
}

func LocFromPath(fullPath string) (*Loc, error) {
	loc := new(Loc)
	loc.Path = fullPath

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, expected a source file", fullPath)
	}

	loc.Name = filepath.Base(fullPath)
	loc.Dir = filepath.Dir(fullPath)

	return loc, nil
}

// WithExt returns the path of a sibling file that has the source file's
// extension replaced by ext.
func (l Loc) WithExt(ext string) string {
	return strings.TrimSuffix(l.Path, filepath.Ext(l.Path)) + ext
}

func (l Loc) String() string {
	return fmt.Sprintf(
		"Name: %s | Dir: %s | Path: %s",
		l.Name,
		l.Dir,
		l.Path,
	)
}
