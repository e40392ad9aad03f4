package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindAssetsRootFromNestedDirectory(t *testing.T) {
	root := t.TempDir()
	assets := filepath.Join(root, "Assets")
	nested := filepath.Join(assets, "Prefabs", "Enemies")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindAssetsRoot(nested)
	if err != nil {
		t.Fatalf("FindAssetsRoot returned error: %v", err)
	}
	if got != assets {
		t.Fatalf("unexpected root: got %q want %q", got, assets)
	}
}

func TestFindAssetsRootAtProjectRoot(t *testing.T) {
	root := t.TempDir()
	assets := filepath.Join(root, "Assets")
	if err := os.MkdirAll(assets, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindAssetsRoot(root)
	if err != nil {
		t.Fatalf("FindAssetsRoot returned error: %v", err)
	}
	if got != assets {
		t.Fatalf("unexpected root: got %q want %q", got, assets)
	}
}

func TestFindAssetsRootPrefersNearestAncestor(t *testing.T) {
	root := t.TempDir()
	outer := filepath.Join(root, "Assets")
	inner := filepath.Join(root, "Subprojects", "Demo", "Assets")
	for _, dir := range []string{outer, inner} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	got, err := FindAssetsRoot(filepath.Join(root, "Subprojects", "Demo"))
	if err != nil {
		t.Fatalf("FindAssetsRoot returned error: %v", err)
	}
	if got != inner {
		t.Fatalf("expected nearest Assets dir %q, got %q", inner, got)
	}
}

func TestFindAssetsRootNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := FindAssetsRoot(dir)
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("expected ErrRootNotFound, got %v", err)
	}
}

func TestFindAssetsRootIgnoresAssetsFile(t *testing.T) {
	root := t.TempDir()
	// A plain file named Assets must not count as the marker.
	if err := os.WriteFile(filepath.Join(root, "Assets"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := FindAssetsRoot(root)
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("expected ErrRootNotFound, got %v", err)
	}
}
