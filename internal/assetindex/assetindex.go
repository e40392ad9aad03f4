package assetindex

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"cluttercutter/internal/fileutil"
	"cluttercutter/internal/logging"
)

// MetaSuffix is the sidecar suffix Unity appends to every imported asset.
const MetaSuffix = ".meta"

var guidPattern = regexp.MustCompile(`guid: ([a-f0-9]{32})`)

// Index maps a GUID to the path of the asset it identifies.
type Index map[string]string

// Build walks dir and returns the index of every asset that has a sidecar
// with an extractable GUID. Sidecar read failures are logged and skipped;
// a sidecar without a GUID line is skipped silently. Duplicate GUIDs keep
// the entry encountered last.
func Build(dir string, logger *slog.Logger) (Index, error) {
	log := logging.NewComponentLogger(logger, "assetindex")
	index := make(Index)

	walkErr := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			log.Warn("skipping unreadable entry", logging.String(logging.FieldPath, path), logging.Error(err))
			return nil
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), MetaSuffix) {
			return nil
		}

		assetPath := strings.TrimSuffix(path, MetaSuffix)
		info, statErr := os.Stat(assetPath)
		if statErr != nil || info.IsDir() {
			// Directories carry .meta files too; only real files are candidates.
			return nil
		}

		guid, guidErr := GUIDFromSidecar(path)
		if guidErr != nil {
			log.Warn("failed to read sidecar", logging.String(logging.FieldPath, path), logging.Error(guidErr))
			return nil
		}
		if guid == "" {
			return nil
		}
		index[guid] = assetPath
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %q: %w", dir, walkErr)
	}

	log.Debug("candidate index built", logging.Int("assets", len(index)))
	return index, nil
}

// GUIDFromSidecar extracts the first GUID declared in the sidecar file at
// path. It returns an empty string without error when no GUID line matches.
func GUIDFromSidecar(path string) (string, error) {
	content, err := fileutil.ReadText(path)
	if err != nil {
		return "", err
	}
	match := guidPattern.FindStringSubmatch(content)
	if match == nil {
		return "", nil
	}
	return match[1], nil
}
