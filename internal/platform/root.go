package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrDataFileNotFound is returned by FindDataFile when no ancestor holds the file.
var ErrDataFileNotFound = errors.New("data file not found")

// FindDataFile looks upwards from startDir for a regular file called name.
// If found, returns its absolute path.
func FindDataFile(startDir, name string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isFile(filepath.Join(dir, name)) {
			return filepath.Join(dir, name), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", ErrDataFileNotFound
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
