// Package output renders check results for the terminal and for reports.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dotcommander/tidy/internal/check"
)

// Supported output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
)

// Formatter renders the result of a run.
type Formatter interface {
	Format(result *check.Result) error
}

// Options configures a Formatter.
type Options struct {
	Quiet    bool
	Verbose  bool
	Colorize bool
	// OutputFile receives json and yaml reports. Empty means Out.
	OutputFile string
	Version    string
	Out        io.Writer
	ErrOut     io.Writer
}

// New creates the Formatter for format.
func New(format string, opts Options) (Formatter, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}

	switch format {
	case FormatConsole:
		return NewConsoleFormatter(opts), nil
	case FormatJSON:
		return NewJSONFormatter(opts), nil
	case FormatYAML:
		return NewYAMLFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ValidFormat reports whether format is supported.
func ValidFormat(format string) bool {
	switch format {
	case FormatConsole, FormatJSON, FormatYAML:
		return true
	}
	return false
}
