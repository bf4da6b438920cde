// Package toolchain runs the native C compiler over generated sources.
package toolchain

import (
	"os/exec"
	"strings"

	"github.com/rerelang/rerec/internal/config"
	"github.com/rerelang/rerec/internal/diagnostics"
	"github.com/rerelang/rerec/internal/logger"
)

// NativeBuilder turns C sources and prebuilt objects into an executable.
// diagnostic is whatever the tool printed, even on success.
type NativeBuilder interface {
	Compile(sources, objects []string, output string) (diagnostic string, err error)
}

var baseFlags = []string{"-Wall", "-Wextra", "-std=c11"}

// CC drives a gcc-compatible compiler driver.
type CC struct {
	Path   string
	Type   config.BuildType
	CFlags []string
}

func NewCC(build config.BuildConfig) *CC {
	path := build.CC
	if path == "" {
		path = config.DefaultCC
	}
	return &CC{Path: path, Type: build.Type, CFlags: build.CFlags}
}

func (cc *CC) Args(sources, objects []string, output string) []string {
	args := make([]string, 0, len(baseFlags)+len(cc.CFlags)+len(sources)+len(objects)+4)
	args = append(args, baseFlags...)
	args = append(args, cc.Type.Flags()...)
	args = append(args, cc.CFlags...)
	args = append(args, sources...)
	args = append(args, objects...)
	args = append(args, "-o", output)
	return args
}

// CommandLine is the command Compile would run for the same arguments.
func (cc *CC) CommandLine(sources, objects []string, output string) string {
	return exec.Command(cc.Path, cc.Args(sources, objects, output)...).String()
}

func (cc *CC) Compile(sources, objects []string, output string) (string, error) {
	cmd := exec.Command(cc.Path, cc.Args(sources, objects, output)...)
	logger.Debug("building", "cmd", cmd.String())

	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), &diagnostics.ExternalToolError{
			Tool:   cc.Path,
			Output: string(out),
			Err:    err,
		}
	}
	if warnings := strings.TrimSpace(string(out)); warnings != "" {
		logger.Warn("native compiler output", "cc", cc.Path, "output", warnings)
	}
	return string(out), nil
}
