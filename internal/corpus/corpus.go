package corpus

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"cluttercutter/internal/fileutil"
	"cluttercutter/internal/logging"
)

// Collect walks root and returns the paths of every searchable file: name
// ends with one of extensions (case-insensitive), relative path matches no
// exclude glob, contents decode as text. Files that fail the text probe are
// skipped silently.
func Collect(root string, extensions, excludes []string, logger *slog.Logger) ([]string, error) {
	log := logging.NewComponentLogger(logger, "corpus")

	lowered := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		lowered = append(lowered, strings.ToLower(ext))
	}

	var files []string
	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Warn("skipping unreadable entry", logging.String(logging.FieldPath, path), logging.Error(err))
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if entry.IsDir() {
			if path != root && matchesAny(excludes, rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesAny(excludes, rel) {
			return nil
		}
		if !hasExtension(entry.Name(), lowered) {
			return nil
		}
		if _, readErr := fileutil.ReadText(path); readErr != nil {
			// Binary payloads behind text extensions are routine; drop quietly.
			return nil
		}
		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %q: %w", root, walkErr)
	}

	log.Debug("corpus collected", logging.Int("files", len(files)))
	return files, nil
}

func hasExtension(name string, lowered []string) bool {
	lowerName := strings.ToLower(name)
	for _, ext := range lowered {
		if strings.HasSuffix(lowerName, ext) {
			return true
		}
	}
	return false
}

func matchesAny(patterns []string, rel string) bool {
	slashed := filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
			return true
		}
	}
	return false
}
