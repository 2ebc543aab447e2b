// Package discovery selects the files a checking run looks at.
package discovery

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
)

// ErrRootNotDirectory is returned by Select when the root is not a directory.
var ErrRootNotDirectory = errors.New("root is not a directory")

// Selector expands include globs below a root directory and drops every
// path matched by an exclude glob.
//
// Patterns are slash-separated and relative to the root; a leading "./" is
// ignored.
type Selector struct {
	root    string
	include []string
	exclude []string
	log     *logrus.Logger
}

// NewSelector creates a Selector rooted at root. An empty root means the
// current working directory.
func NewSelector(root string, include, exclude []string) *Selector {
	if root == "" {
		root = "."
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	return &Selector{
		root:    root,
		include: include,
		exclude: exclude,
		log:     log,
	}
}

// WithLogger sets the logger used for debug output.
func (s *Selector) WithLogger(log *logrus.Logger) *Selector {
	if log != nil {
		s.log = log
	}
	return s
}

// Select returns the selected file paths, joined onto the root.
//
// Include patterns are expanded in the order given, each in filesystem walk
// order. A path yielded by an earlier pattern is not repeated. Any error
// while walking the filesystem aborts the selection, and so does a root
// that is missing or not a directory.
func (s *Selector) Select() ([]string, error) {
	fi, err := os.Stat(s.root)
	if err != nil {
		return nil, fmt.Errorf("cannot access root %s: %w", s.root, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDirectory, s.root)
	}

	fsys := os.DirFS(s.root)
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range s.include {
		matches, err := doublestar.Glob(fsys, normalizePattern(pattern),
			doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
		if err != nil {
			return nil, fmt.Errorf("error evaluating include pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			s.log.Debugf("include set matched path: %s", match)

			if excludedBy, ok := s.excludedBy(match); ok {
				s.log.Debugf("skipping %s (excluded by %s)", match, excludedBy)
				continue
			}

			paths = append(paths, filepath.Join(s.root, filepath.FromSlash(match)))
		}
	}

	return paths, nil
}

// excludedBy returns the first exclude pattern matching the root-relative,
// slash-separated relPath.
func (s *Selector) excludedBy(relPath string) (string, bool) {
	for _, pattern := range s.exclude {
		// Invalid patterns are rejected when the config is loaded
		if matched, _ := doublestar.Match(normalizePattern(pattern), relPath); matched {
			return pattern, true
		}
	}
	return "", false
}

func normalizePattern(pattern string) string {
	return strings.TrimPrefix(pattern, "./")
}
