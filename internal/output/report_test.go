package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/tidy/internal/check"
)

var fixedTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNewReport(t *testing.T) {
	report := NewReport(failingResult(), "1.2.3", fixedTime)

	assert.Equal(t, ReportHeader{Tool: "tidy", Version: "1.2.3", Timestamp: "2025-01-01T00:00:00Z"}, report.Header)
	assert.Equal(t, ReportSummary{
		TotalFiles:      2,
		SuccessfulFiles: 1,
		FailedFiles:     1,
		TotalErrors:     2,
		Passed:          false,
	}, report.Summary)

	require.Len(t, report.Results, 2)
	assert.Equal(t, "a.go", report.Results[0].File)
	assert.False(t, report.Results[0].Success)
	assert.Equal(t, []ReportError{
		{Line: 1, Column: 1, Message: "line too long (has 12 characters, the limit is 10)"},
		{Line: 3, Column: 4, Message: "line is indented with 3 spaces, expected a multiple of 2"},
	}, report.Results[0].Errors)
	assert.Equal(t, ReportResult{File: "b.go", Success: true}, report.Results[1])
}

func TestNewReport_Passed(t *testing.T) {
	report := NewReport(&check.Result{Files: []string{"a.go"}}, "dev", fixedTime)

	assert.True(t, report.Summary.Passed)
	assert.Equal(t, 1, report.Summary.SuccessfulFiles)
	assert.Empty(t, report.Results[0].Errors)
}

func TestJSONFormatter_Format(t *testing.T) {
	var out bytes.Buffer
	f := NewJSONFormatter(Options{Version: "1.2.3", Out: &out})
	f.now = func() time.Time { return fixedTime }

	require.NoError(t, f.Format(failingResult()))

	var report Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, NewReport(failingResult(), "1.2.3", fixedTime), report)
	assert.Contains(t, out.String(), `"total_errors": 2`)
}

func TestJSONFormatter_OutputFile(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "report.json")
	f := NewJSONFormatter(Options{OutputFile: path, Out: &out})

	require.NoError(t, f.Format(&check.Result{Files: []string{"a.go"}}))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.True(t, report.Summary.Passed)
}

func TestJSONFormatter_OutputFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.json")
	f := NewJSONFormatter(Options{OutputFile: path, Out: &bytes.Buffer{}})

	err := f.Format(&check.Result{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error writing to file")
}

func TestYAMLFormatter_Format(t *testing.T) {
	var out bytes.Buffer
	f := NewYAMLFormatter(Options{Version: "1.2.3", Out: &out})
	f.now = func() time.Time { return fixedTime }

	require.NoError(t, f.Format(failingResult()))

	var report Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, NewReport(failingResult(), "1.2.3", fixedTime), report)
	assert.Contains(t, out.String(), "total_errors: 2")
}
