package project

import (
	"os"
	"path/filepath"

	"github.com/dotcommander/tidy/internal/config"
)

// Info contains information about the detected project.
// Named 'Info' instead of 'ProjectInfo' to avoid stuttering (project.Info vs project.ProjectInfo).
type Info struct {
	Root       string
	ConfigFile string
	HasConfig  bool
	HasGit     bool
}

// markers identify a project root, checked in order in every directory.
var markers = []string{config.DefaultFileName, ".git"}

// FindProjectRoot searches for a project root starting from the given path
// and climbing up the directory tree if needed.
// The first directory containing a config file or a .git entry wins; if
// none does, the absolute start path is returned.
func FindProjectRoot(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", err
	}

	currentDir := absPath
	for {
		if isProjectRoot(currentDir) {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parent
	}

	return absPath, nil
}

// isProjectRoot determines if a directory is a project root
func isProjectRoot(path string) bool {
	for _, marker := range markers {
		if _, err := os.Stat(filepath.Join(path, marker)); err == nil {
			return true
		}
	}
	return false
}

// Detect detects project information at the given path.
// Named 'Detect' instead of 'DetectProjectInfo' to avoid stuttering.
func Detect(rootPath string) (*Info, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Root:       absRoot,
		ConfigFile: filepath.Join(absRoot, config.DefaultFileName),
	}

	if fi, err := os.Stat(info.ConfigFile); err == nil && !fi.IsDir() {
		info.HasConfig = true
	}

	if _, err := os.Stat(filepath.Join(absRoot, ".git")); err == nil {
		info.HasGit = true
	}

	return info, nil
}
