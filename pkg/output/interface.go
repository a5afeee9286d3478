package output

import (
	"context"
	"io"

	"github.com/ccollicutt/onair/pkg/analyzer"
)

// Formatter renders analysis results in a specific format.
type Formatter interface {
	// Result renders a single query result as soon as it is available.
	// Formats that can only be written whole may buffer or ignore it.
	Result(ctx context.Context, result *analyzer.Result, w io.Writer) error

	// Format renders whatever belongs after all queries have run.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose enables detailed output including the matched broadcasts.
	Verbose bool

	// Quiet enables minimal summary-only output.
	Quiet bool
}
