package common

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindModuleRoot finds the Go module root directory by searching for `go.mod`
// in dir and its parents.
func FindModuleRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("unable to determine absolute path: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached the root directory
		}
		dir = parent
	}
	return "", fmt.Errorf("go module root not found for directory: %s", dir)
}
