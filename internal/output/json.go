package output

import (
	"fmt"
	"io"
	"time"

	"github.com/dotcommander/tidy/internal/check"
	"github.com/goccy/go-json"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	version    string
	outputFile string
	out        io.Writer
	now        func() time.Time
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(opts Options) *JSONFormatter {
	return &JSONFormatter{
		version:    opts.Version,
		outputFile: opts.OutputFile,
		out:        opts.Out,
		now:        time.Now,
	}
}

// Format writes the result as an indented JSON report.
func (f *JSONFormatter) Format(result *check.Result) error {
	report := NewReport(result, f.version, f.now())

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	return writeReport(append(data, '\n'), f.outputFile, f.out)
}
