// Package testutil holds helpers shared by the compiler tests.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rerelang/rerec/internal/config"
	"github.com/rerelang/rerec/internal/driver"
	"github.com/rerelang/rerec/internal/logger"
)

// FakeBuilder records the arguments of every Compile call instead of
// running a C compiler.
type FakeBuilder struct {
	Calls [][]string
	Err   error
}

func (f *FakeBuilder) Compile(sources, objects []string, output string) (string, error) {
	call := append(append(append([]string{}, sources...), objects...), output)
	f.Calls = append(f.Calls, call)
	return "", f.Err
}

// NewCompiler returns a driver with default settings, a fake builder and
// silenced logging.
func NewCompiler(t *testing.T) (*driver.Compiler, *FakeBuilder) {
	t.Helper()
	logger.Discard()
	builder := &FakeBuilder{}
	compiler := driver.New(config.Defaults(), builder)
	compiler.Stdout = io.Discard
	return compiler, builder
}

// CopyToTemp copies a testdata file into a fresh directory so the driver can
// write its C file next to it.
func CopyToTemp(t *testing.T, path string) string {
	t.Helper()
	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	dst := filepath.Join(t.TempDir(), filepath.Base(path))
	if err := os.WriteFile(dst, src, 0644); err != nil {
		t.Fatalf("writing %s: %v", dst, err)
	}
	return dst
}
