package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		withEndings    []string
		withoutEndings []string
	}{
		{
			name:    "empty content",
			content: "",
		},
		{
			name:           "single newline",
			content:        "\n",
			withEndings:    []string{"\n"},
			withoutEndings: []string{""},
		},
		{
			name:           "trailing newline",
			content:        "a\nb\n",
			withEndings:    []string{"a\n", "b\n"},
			withoutEndings: []string{"a", "b"},
		},
		{
			name:           "no trailing newline",
			content:        "a\nb",
			withEndings:    []string{"a\n", "b"},
			withoutEndings: []string{"a", "b"},
		},
		{
			name:           "crlf endings",
			content:        "a\r\nb\r\n",
			withEndings:    []string{"a\r\n", "b\r\n"},
			withoutEndings: []string{"a", "b"},
		},
		{
			name:           "lone carriage return is content",
			content:        "a\rb\nc\r",
			withEndings:    []string{"a\rb\n", "c\r"},
			withoutEndings: []string{"a\rb", "c\r"},
		},
		{
			name:           "blank lines",
			content:        "\n\nx\n",
			withEndings:    []string{"\n", "\n", "x\n"},
			withoutEndings: []string{"", "", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := SplitLines(tt.content)
			assert.Equal(t, tt.withEndings, lines.WithEndings)
			assert.Equal(t, tt.withoutEndings, lines.WithoutEndings)
			assert.Equal(t, len(lines.WithEndings), len(lines.WithoutEndings))
		})
	}
}

func TestTrimLineEnding(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"foo\n", "foo"},
		{"foo\r\n", "foo"},
		{"foo\r", "foo\r"},
		{"foo", "foo"},
		{"foo\r\r\n", "foo\r"},
		{"\n", ""},
	}

	for _, tt := range tests {
		if got := TrimLineEnding(tt.line); got != tt.want {
			t.Errorf("TrimLineEnding(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
