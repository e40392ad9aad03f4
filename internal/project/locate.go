package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// RootMarker is the directory name that identifies a Unity project root.
const RootMarker = "Assets"

// ErrRootNotFound indicates that no ancestor of the starting path contains
// an Assets directory.
var ErrRootNotFound = errors.New("could not find Assets directory in parent directories")

// FindAssetsRoot searches start and each of its ancestors, nearest first,
// for a directory containing the Assets marker and returns the Assets
// directory path of the first match.
func FindAssetsRoot(start string) (string, error) {
	current, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", start, err)
	}

	for {
		candidate := filepath.Join(current, RootMarker)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrRootNotFound
		}
		current = parent
	}
}
