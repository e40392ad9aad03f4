package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// Project is a throwaway Unity-style project tree rooted in a temp dir.
type Project struct {
	Root   string
	Assets string
}

// NewProject creates a project root containing an empty Assets directory.
func NewProject(t testing.TB) *Project {
	t.Helper()

	root := t.TempDir()
	assets := filepath.Join(root, "Assets")
	if err := os.MkdirAll(assets, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", assets, err)
	}
	return &Project{Root: root, Assets: assets}
}

// Asset writes an asset with its sidecar under Assets and returns its path.
func (p *Project) Asset(t testing.TB, name, guid, content string) string {
	t.Helper()
	return WriteAsset(t, p.Assets, name, guid, content)
}
