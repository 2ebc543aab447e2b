package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/tidy/internal/check"
)

// Report is the document written by the json and yaml formatters.
type Report struct {
	Header  ReportHeader   `json:"header" yaml:"header"`
	Summary ReportSummary  `json:"summary" yaml:"summary"`
	Results []ReportResult `json:"results" yaml:"results"`
}

// ReportHeader contains report metadata
type ReportHeader struct {
	Tool      string `json:"tool" yaml:"tool"`
	Version   string `json:"version" yaml:"version"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// ReportSummary contains summary statistics
type ReportSummary struct {
	TotalFiles      int  `json:"total_files" yaml:"total_files"`
	SuccessfulFiles int  `json:"successful_files" yaml:"successful_files"`
	FailedFiles     int  `json:"failed_files" yaml:"failed_files"`
	TotalErrors     int  `json:"total_errors" yaml:"total_errors"`
	Passed          bool `json:"passed" yaml:"passed"`
}

// ReportResult holds the failures of a single file.
type ReportResult struct {
	File    string        `json:"file" yaml:"file"`
	Success bool          `json:"success" yaml:"success"`
	Errors  []ReportError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ReportError is a check failure with 1-based line and column numbers.
type ReportError struct {
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Message string `json:"message" yaml:"message"`
}

// NewReport converts a run result into a Report.
func NewReport(result *check.Result, version string, now time.Time) Report {
	byFile := make(map[string][]ReportError)
	for _, e := range result.Errors {
		byFile[e.Path] = append(byFile[e.Path], ReportError{
			Line:    e.Line + 1,
			Column:  e.Column + 1,
			Message: e.Message,
		})
	}

	failed := result.FailedFiles()
	report := Report{
		Header: ReportHeader{
			Tool:      "tidy",
			Version:   version,
			Timestamp: now.Format(time.RFC3339),
		},
		Summary: ReportSummary{
			TotalFiles:      len(result.Files),
			SuccessfulFiles: len(result.Files) - failed,
			FailedFiles:     failed,
			TotalErrors:     len(result.Errors),
			Passed:          result.Passed(),
		},
		Results: make([]ReportResult, 0, len(result.Files)),
	}

	for _, path := range result.Files {
		errs := byFile[path]
		report.Results = append(report.Results, ReportResult{
			File:    path,
			Success: len(errs) == 0,
			Errors:  errs,
		})
	}

	return report
}

// writeReport writes data to outputFile, or to out when no file is set.
func writeReport(data []byte, outputFile string, out io.Writer) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", outputFile, err)
		}
		return nil
	}

	_, err := out.Write(data)
	return err
}
