package diagnostics

import (
	"errors"
)

// COMPILER_ERROR_FOUND matches, through errors.Is, every error caused by the
// source program rather than by the environment.
var (
	COMPILER_ERROR_FOUND = errors.New("compiler error found")
)

type Diag struct {
	Message string
}

func (diag Diag) String() string { return diag.Message }

// Collector keeps every diagnostic reported during a compilation.
type Collector struct {
	Diags []Diag
}

func New() *Collector {
	return &Collector{
		Diags: nil,
	}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	collector.Diags = append(collector.Diags, diag)
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Diags) > 0
}
