package check

import (
	"fmt"

	"github.com/dotcommander/tidy/internal/config"
	"github.com/dotcommander/tidy/internal/textutil"
)

// Context holds everything a check needs to look at one file and collects
// the failures it reports. A Context is created for exactly one file and
// discarded once its errors are drained.
type Context struct {
	Config  *config.Config
	Path    string
	Content string
	// Lines has the line terminators removed; use it for anything that
	// counts characters or inspects indentation.
	Lines []string
	// LinesWithEndings keeps the terminators so patterns can match them.
	LinesWithEndings []string

	errors []CheckError
}

// NewContext splits content into lines and prepares a Context for path.
func NewContext(cfg *config.Config, path, content string) *Context {
	lines := textutil.SplitLines(content)
	return &Context{
		Config:           cfg,
		Path:             path,
		Content:          content,
		Lines:            lines.WithoutEndings,
		LinesWithEndings: lines.WithEndings,
	}
}

// Error records a failure at the given 0-based line and column.
func (cx *Context) Error(line, column int, format string, args ...any) {
	cx.errors = append(cx.errors, CheckError{
		Path:    cx.Path,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	})
}

// Errors returns the failures recorded so far, in the order reported.
func (cx *Context) Errors() []CheckError {
	return cx.errors
}
