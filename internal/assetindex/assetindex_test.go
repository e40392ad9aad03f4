package assetindex_test

import (
	"os"
	"path/filepath"
	"testing"

	"cluttercutter/internal/assetindex"
	"cluttercutter/internal/logging"
	"cluttercutter/internal/testsupport"
)

func TestBuildIndexesAssetsWithSidecars(t *testing.T) {
	proj := testsupport.NewProject(t)
	prefab := proj.Asset(t, "foo.prefab", testsupport.GUID('a'), "prefab body")
	mat := proj.Asset(t, filepath.Join("Materials", "bar.mat"), testsupport.GUID('b'), "material body")

	index, err := assetindex.Build(proj.Assets, logging.NewNop())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if len(index) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(index))
	}
	if index[testsupport.GUID('a')] != prefab {
		t.Fatalf("guid a maps to %q, want %q", index[testsupport.GUID('a')], prefab)
	}
	if index[testsupport.GUID('b')] != mat {
		t.Fatalf("guid b maps to %q, want %q", index[testsupport.GUID('b')], mat)
	}
}

func TestBuildExtractsExactGUID(t *testing.T) {
	proj := testsupport.NewProject(t)
	guid := "0123456789abcdef0123456789abcdef"
	proj.Asset(t, "thing.asset", guid, "x")

	index, err := assetindex.Build(proj.Assets, logging.NewNop())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if _, ok := index[guid]; !ok {
		t.Fatalf("expected index to contain %q, got %v", guid, index)
	}
}

func TestBuildSkipsOrphanSidecars(t *testing.T) {
	proj := testsupport.NewProject(t)
	// Sidecar without its asset.
	testsupport.WriteFile(t, filepath.Join(proj.Assets, "gone.prefab.meta"), testsupport.MetaContent(testsupport.GUID('c')))

	index, err := assetindex.Build(proj.Assets, logging.NewNop())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(index) != 0 {
		t.Fatalf("expected empty index, got %v", index)
	}
}

func TestBuildSkipsDirectorySidecars(t *testing.T) {
	proj := testsupport.NewProject(t)
	sub := filepath.Join(proj.Assets, "Prefabs")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	// Unity writes .meta files for folders as well; they are not candidates.
	testsupport.WriteFile(t, sub+".meta", testsupport.MetaContent(testsupport.GUID('d')))

	index, err := assetindex.Build(proj.Assets, logging.NewNop())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(index) != 0 {
		t.Fatalf("expected empty index, got %v", index)
	}
}

func TestBuildSkipsSidecarsWithoutGUID(t *testing.T) {
	proj := testsupport.NewProject(t)
	testsupport.WriteFile(t, filepath.Join(proj.Assets, "odd.asset"), "asset body")
	testsupport.WriteFile(t, filepath.Join(proj.Assets, "odd.asset.meta"), "fileFormatVersion: 2\n")

	index, err := assetindex.Build(proj.Assets, logging.NewNop())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(index) != 0 {
		t.Fatalf("expected empty index, got %v", index)
	}
}

func TestBuildRejectsUppercaseGUID(t *testing.T) {
	proj := testsupport.NewProject(t)
	testsupport.WriteFile(t, filepath.Join(proj.Assets, "up.asset"), "asset body")
	testsupport.WriteFile(t, filepath.Join(proj.Assets, "up.asset.meta"), "guid: ABCDEFABCDEFABCDEFABCDEFABCDEFAB\n")

	index, err := assetindex.Build(proj.Assets, logging.NewNop())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(index) != 0 {
		t.Fatalf("uppercase guid must not match, got %v", index)
	}
}

func TestBuildDuplicateGUIDKeepsSingleEntry(t *testing.T) {
	proj := testsupport.NewProject(t)
	guid := testsupport.GUID('e')
	first := proj.Asset(t, "first.mat", guid, "x")
	second := proj.Asset(t, "second.mat", guid, "y")

	index, err := assetindex.Build(proj.Assets, logging.NewNop())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(index) != 1 {
		t.Fatalf("expected exactly one entry for duplicated guid, got %d", len(index))
	}
	// Enumeration order decides the winner; either asset is acceptable.
	if got := index[guid]; got != first && got != second {
		t.Fatalf("unexpected winner %q", got)
	}
}

func TestBuildEmptyDirectory(t *testing.T) {
	proj := testsupport.NewProject(t)

	index, err := assetindex.Build(proj.Assets, logging.NewNop())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(index) != 0 {
		t.Fatalf("expected empty index, got %v", index)
	}
}

func TestGUIDFromSidecarUsesFirstMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "multi.meta")
	content := testsupport.MetaContent(testsupport.GUID('1')) + testsupport.MetaContent(testsupport.GUID('2'))
	testsupport.WriteFile(t, path, content)

	guid, err := assetindex.GUIDFromSidecar(path)
	if err != nil {
		t.Fatalf("GUIDFromSidecar returned error: %v", err)
	}
	if guid != testsupport.GUID('1') {
		t.Fatalf("expected first guid, got %q", guid)
	}
}
