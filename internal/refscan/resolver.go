package refscan

import (
	"strings"

	"cluttercutter/internal/fileutil"
)

// Item is one unit of parallel work: a candidate GUID and the asset it names.
type Item struct {
	GUID      string
	AssetPath string
}

// Result reports whether any corpus file mentions the candidate's GUID.
type Result struct {
	AssetPath  string
	Referenced bool
}

// FindReferences scans corpusFiles in order and short-circuits on the first
// file whose contents contain guid as a substring. Files that cannot be read
// or decoded are treated as non-matching. The function has no shared mutable
// state and is safe to invoke concurrently.
func FindReferences(guid string, corpusFiles []string, assetPath string) Result {
	for _, path := range corpusFiles {
		content, err := fileutil.ReadText(path)
		if err != nil {
			continue
		}
		if strings.Contains(content, guid) {
			return Result{AssetPath: assetPath, Referenced: true}
		}
	}
	return Result{AssetPath: assetPath, Referenced: false}
}
