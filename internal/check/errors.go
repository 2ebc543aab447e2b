package check

import "fmt"

// CheckError describes a single check failure.
//
// Each check can report any number of failures per file.
type CheckError struct {
	// Path of the file that failed the check.
	Path string
	// Line of the failure, 0-based.
	Line int
	// Column of the failure, 0-based. Checks that cannot tell the exact
	// position report 0.
	Column int
	// Message describes what went wrong.
	Message string
}

// Error renders the failure with 1-based line and column numbers.
func (e CheckError) Error() string {
	return fmt.Sprintf("error at %s:%d:%d: %s", e.Path, e.Line+1, e.Column+1, e.Message)
}
