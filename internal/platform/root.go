package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned when no graph root is found above a directory.
var ErrRootNotFound = errors.New("graph root not found")

// logseqDir is the directory Logseq keeps its own settings in.
const logseqDir = "logseq"

// FindRoot looks upwards from startDir for a graph root: a directory holding
// a logseq/ directory or a ConfigFile. It returns the absolute path of the
// root.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isDir(filepath.Join(dir, logseqDir)) || hasFile(dir, ConfigFile) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w above %s", ErrRootNotFound, abs)
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
