package textutil

import "strings"

// Lines holds two index-aligned views of a file's lines.
//
// WithEndings keeps every line terminator exactly as it appeared in the
// file, so patterns can match on "\r\n" or a trailing tab before "\n".
// WithoutEndings drops the "\n" terminator and a "\r" directly before it.
type Lines struct {
	WithEndings    []string
	WithoutEndings []string
}

// SplitLines splits content into both line views.
// Empty content yields zero lines. A final line without a newline is kept
// as is, without a synthetic terminator.
func SplitLines(content string) Lines {
	if content == "" {
		return Lines{}
	}

	withEndings := strings.SplitAfter(content, "\n")
	// SplitAfter yields a trailing "" when content ends with "\n"
	if withEndings[len(withEndings)-1] == "" {
		withEndings = withEndings[:len(withEndings)-1]
	}

	withoutEndings := make([]string, len(withEndings))
	for i, line := range withEndings {
		withoutEndings[i] = TrimLineEnding(line)
	}

	return Lines{
		WithEndings:    withEndings,
		WithoutEndings: withoutEndings,
	}
}

// TrimLineEnding removes a trailing "\n" or "\r\n" from line.
// A lone "\r" is not a line terminator and is left in place.
func TrimLineEnding(line string) string {
	trimmed, ok := strings.CutSuffix(line, "\n")
	if !ok {
		return line
	}
	return strings.TrimSuffix(trimmed, "\r")
}
