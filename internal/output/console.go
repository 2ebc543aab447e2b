package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotcommander/tidy/internal/check"
	"github.com/muesli/termenv"
)

// ConsoleFormatter prints a confirmation on success, or an error count
// followed by one line per error.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
	out      io.Writer
	errOut   io.Writer
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(opts Options) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    opts.Quiet,
		verbose:  opts.Verbose,
		colorize: opts.Colorize,
		out:      opts.Out,
		errOut:   opts.ErrOut,
	}
}

// Format writes the result. Errors always go to the error stream, even in
// quiet mode.
func (f *ConsoleFormatter) Format(result *check.Result) error {
	if f.verbose {
		f.printFiles(result)
	}

	if result.Passed() {
		if f.quiet {
			return nil
		}
		style := f.style(f.out).Bold(true).Foreground(lipgloss.Color("10")) // green
		_, err := fmt.Fprintln(f.out, style.Render("all tidy checks passed without error"))
		return err
	}

	count := len(result.Errors)
	plural := "s"
	if count == 1 {
		plural = ""
	}

	header := f.style(f.errOut).Bold(true).Foreground(lipgloss.Color("9")) // red
	if _, err := fmt.Fprintln(f.errOut, header.Render(fmt.Sprintf("%d tidy error%s", count, plural))); err != nil {
		return err
	}

	for _, e := range result.Errors {
		if _, err := fmt.Fprintln(f.errOut, e.Error()); err != nil {
			return err
		}
	}

	return nil
}

// printFiles lists every checked file with its status.
func (f *ConsoleFormatter) printFiles(result *check.Result) {
	failed := make(map[string]int)
	for _, e := range result.Errors {
		failed[e.Path]++
	}

	ok := f.style(f.out).Foreground(lipgloss.Color("10")) // green
	bad := f.style(f.out).Foreground(lipgloss.Color("9")) // red
	dim := f.style(f.out).Foreground(lipgloss.Color("8")) // gray

	for _, path := range result.Files {
		if n := failed[path]; n > 0 {
			fmt.Fprintf(f.out, "%s %s %s\n", bad.Render("✗"), path, dim.Render(fmt.Sprintf("(%d)", n)))
		} else {
			fmt.Fprintf(f.out, "%s %s\n", ok.Render("✓"), path)
		}
	}
}

// style returns an empty style bound to w, so colour support is detected
// per stream. Without colorize the style renders plain text.
func (f *ConsoleFormatter) style(w io.Writer) lipgloss.Style {
	r := lipgloss.NewRenderer(w)
	if !f.colorize {
		r.SetColorProfile(termenv.Ascii)
	}
	return r.NewStyle()
}
