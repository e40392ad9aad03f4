package refscan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"cluttercutter/internal/testsupport"
)

func poolItems(n int) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item{
			GUID:      fmt.Sprintf("%032x", i),
			AssetPath: fmt.Sprintf("Assets/asset_%d.prefab", i),
		})
	}
	return items
}

func TestPoolRunChecksEveryItem(t *testing.T) {
	dir := t.TempDir()
	referenced := testsupport.GUID('b')
	scene := filepath.Join(dir, "main.unity")
	testsupport.WriteFile(t, scene, "contains "+referenced)

	items := []Item{
		{GUID: testsupport.GUID('a'), AssetPath: "Assets/foo.prefab"},
		{GUID: referenced, AssetPath: "Assets/bar.mat"},
	}

	pool := &Pool{Workers: 4}
	results, err := pool.Run(context.Background(), items, []string{scene})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != len(items) {
		t.Fatalf("expected %d results, got %d", len(items), len(results))
	}

	byPath := make(map[string]bool, len(results))
	for _, result := range results {
		byPath[result.AssetPath] = result.Referenced
	}
	if byPath["Assets/foo.prefab"] {
		t.Fatal("foo.prefab has no references and must be reported unreferenced")
	}
	if !byPath["Assets/bar.mat"] {
		t.Fatal("bar.mat is referenced from the scene")
	}
}

func TestPoolProgressFiresOncePerItem(t *testing.T) {
	items := poolItems(25)

	var mu sync.Mutex
	var calls []int
	pool := &Pool{
		Workers: 8,
		OnProgress: func(done, total int) {
			mu.Lock()
			defer mu.Unlock()
			if total != len(items) {
				t.Errorf("unexpected total %d", total)
			}
			calls = append(calls, done)
		},
	}

	if _, err := pool.Run(context.Background(), items, nil); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != len(items) {
		t.Fatalf("expected %d progress calls, got %d", len(items), len(calls))
	}
	// done values are strictly increasing because the collector is single-threaded.
	for i, done := range calls {
		if done != i+1 {
			t.Fatalf("progress call %d reported done=%d", i, done)
		}
	}
}

func TestPoolWorkerBounds(t *testing.T) {
	for _, workers := range []int{0, -1, 33} {
		pool := &Pool{Workers: workers}
		_, err := pool.Run(context.Background(), poolItems(1), nil)
		if !errors.Is(err, ErrInvalidParallelism) {
			t.Fatalf("workers=%d: expected ErrInvalidParallelism, got %v", workers, err)
		}
	}
}

func TestPoolBoundaryWorkerCounts(t *testing.T) {
	for _, workers := range []int{MinWorkers, MaxWorkers} {
		pool := &Pool{Workers: workers}
		results, err := pool.Run(context.Background(), poolItems(40), nil)
		if err != nil {
			t.Fatalf("workers=%d: Run returned error: %v", workers, err)
		}
		if len(results) != 40 {
			t.Fatalf("workers=%d: expected 40 results, got %d", workers, len(results))
		}
	}
}

func TestPoolWorkerPanicFailsRun(t *testing.T) {
	poison := testsupport.GUID('f')
	pool := &Pool{
		Workers: 2,
		resolve: func(guid string, corpusFiles []string, assetPath string) Result {
			if guid == poison {
				panic("corrupted work item")
			}
			return Result{AssetPath: assetPath}
		},
	}

	items := poolItems(10)
	items = append(items, Item{GUID: poison, AssetPath: "Assets/poison.asset"})

	_, err := pool.Run(context.Background(), items, nil)
	if !errors.Is(err, ErrWorkerFailure) {
		t.Fatalf("expected ErrWorkerFailure, got %v", err)
	}
}

func TestPoolHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := &Pool{Workers: 2}
	_, err := pool.Run(ctx, poolItems(100), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPoolEmptyItemSet(t *testing.T) {
	pool := &Pool{Workers: 3}
	results, err := pool.Run(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %v", results)
	}
}
