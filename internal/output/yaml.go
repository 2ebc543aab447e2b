package output

import (
	"fmt"
	"io"
	"time"

	"github.com/dotcommander/tidy/internal/check"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	version    string
	outputFile string
	out        io.Writer
	now        func() time.Time
}

// NewYAMLFormatter creates a new YAMLFormatter
func NewYAMLFormatter(opts Options) *YAMLFormatter {
	return &YAMLFormatter{
		version:    opts.Version,
		outputFile: opts.OutputFile,
		out:        opts.Out,
		now:        time.Now,
	}
}

// Format writes the result as a YAML report.
func (f *YAMLFormatter) Format(result *check.Result) error {
	report := NewReport(result, f.version, f.now())

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("error marshaling YAML: %w", err)
	}

	return writeReport(data, f.outputFile, f.out)
}
