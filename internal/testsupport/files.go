package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteBinaryFile fills path with the requested number of bytes, alternating
// NUL and pattern bytes so text probes reject it. A size <= 0 writes one byte.
func WriteBinaryFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	buf := make([]byte, size)
	for i := range buf {
		if i%2 == 0 {
			buf[i] = 0x00
		} else {
			buf[i] = 0x42
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteAsset writes an asset file plus its sidecar .meta file carrying guid.
// Returns the asset path.
func WriteAsset(t testing.TB, dir, name, guid, content string) string {
	t.Helper()

	assetPath := filepath.Join(dir, name)
	WriteFile(t, assetPath, content)
	WriteFile(t, assetPath+".meta", MetaContent(guid))
	return assetPath
}

// MetaContent renders a minimal Unity sidecar file for the given guid.
func MetaContent(guid string) string {
	return fmt.Sprintf("fileFormatVersion: 2\nguid: %s\n", guid)
}

// GUID builds a deterministic 32-character lowercase hex identifier from a
// single seed character, e.g. GUID('a') == "aaaa...".
func GUID(seed byte) string {
	return strings.Repeat(string(seed), 32)
}
