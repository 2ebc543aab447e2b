// Package check runs the style checks over the selected files.
package check

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/dotcommander/tidy/internal/config"
	"github.com/dotcommander/tidy/internal/discovery"
	"github.com/sirupsen/logrus"
)

// ErrInvalidUTF8 is returned when a selected file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("file does not contain valid UTF-8")

// Check is a single rule applied to one file at a time.
type Check struct {
	Name string
	Run  func(cx *Context)
}

// DefaultChecks returns the checks in the order they run on every file.
func DefaultChecks() []Check {
	return []Check{
		{Name: "max-line-length", Run: checkMaxLineLength},
		{Name: "forbidden-content", Run: checkForbiddenContent},
		{Name: "indentation-style", Run: checkIndentationStyle},
	}
}

// Options configures an Engine.
type Options struct {
	// Root is the directory patterns are resolved against. Empty means
	// the current working directory.
	Root string
	// Logger receives debug output. Nil discards it.
	Logger *logrus.Logger
}

// Engine selects files and runs the checks on each of them.
type Engine struct {
	cfg    *config.Config
	opts   Options
	checks []Check
	log    *logrus.Logger
}

// NewEngine creates an Engine for a validated config.
func NewEngine(cfg *config.Config, opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Engine{
		cfg:    cfg,
		opts:   opts,
		checks: DefaultChecks(),
		log:    log,
	}
}

// WithChecks replaces the checks the engine runs.
func (e *Engine) WithChecks(checks []Check) *Engine {
	e.checks = checks
	return e
}

// Result holds the outcome of a run.
type Result struct {
	// Files lists every checked file, in selection order.
	Files []string
	// Errors lists all failures in file order, then check order, then the
	// order each check reported them.
	Errors []CheckError
}

// Passed reports whether no check failed.
func (r *Result) Passed() bool {
	return len(r.Errors) == 0
}

// FailedFiles returns the number of distinct files with at least one failure.
func (r *Result) FailedFiles() int {
	seen := make(map[string]bool)
	for _, e := range r.Errors {
		seen[e.Path] = true
	}
	return len(seen)
}

// Run checks every selected file.
//
// A file that cannot be listed, read or decoded aborts the whole run; no
// partial result is returned in that case.
func (e *Engine) Run() (*Result, error) {
	paths, err := discovery.NewSelector(e.opts.Root, e.cfg.Include, e.cfg.Exclude).
		WithLogger(e.log).
		Select()
	if err != nil {
		return nil, fmt.Errorf("error selecting files: %w", err)
	}

	result := &Result{Files: paths}
	for _, path := range paths {
		errs, err := e.CheckFile(path)
		if err != nil {
			return nil, err
		}
		result.Errors = append(result.Errors, errs...)
	}

	e.log.Debugf("checked %d files, %d errors", len(result.Files), len(result.Errors))

	return result, nil
}

// CheckFile reads path and runs all checks on its content.
func (e *Engine) CheckFile(path string) ([]CheckError, error) {
	e.log.Debugf("checking %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("error reading %s: %w", path, ErrInvalidUTF8)
	}

	return e.CheckContent(path, string(data)), nil
}

// CheckContent runs all checks on content as if it were read from path.
func (e *Engine) CheckContent(path, content string) []CheckError {
	cx := NewContext(e.cfg, path, content)

	for _, c := range e.checks {
		before := len(cx.Errors())
		c.Run(cx)
		if n := len(cx.Errors()) - before; n > 0 {
			e.log.WithFields(logrus.Fields{"file": path, "check": c.Name}).Debugf("%d errors", n)
		}
	}

	return cx.Errors()
}

// RunChecks runs the default checks over the files selected by cfg,
// resolving patterns against the current working directory.
// It returns nil when every file passes.
func RunChecks(cfg *config.Config) ([]CheckError, error) {
	result, err := NewEngine(cfg, Options{}).Run()
	if err != nil {
		return nil, err
	}
	if result.Passed() {
		return nil, nil
	}
	return result.Errors, nil
}
