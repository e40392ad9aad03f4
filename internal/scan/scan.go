package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"cluttercutter/internal/assetindex"
	"cluttercutter/internal/corpus"
	"cluttercutter/internal/logging"
	"cluttercutter/internal/preflight"
	"cluttercutter/internal/project"
	"cluttercutter/internal/refscan"
)

// ErrInvalidDirectory indicates the supplied target directory cannot be scanned.
var ErrInvalidDirectory = errors.New("invalid target directory")

// Options parameterizes a scan run.
type Options struct {
	// Directory is the subtree whose assets are checked for references.
	Directory string
	// Processes is the worker count for the parallel search, in [1, 32].
	Processes int
	// Extensions filters the searchable corpus (dot-prefixed, lowercase).
	Extensions []string
	// Excludes drops corpus files whose path relative to the Assets root
	// matches one of these doublestar globs.
	Excludes []string

	// OnIndexBuilt fires after the candidate index phase with its size.
	OnIndexBuilt func(assets int)
	// OnCorpusCollected fires after corpus collection with the corpus size
	// and the located Assets root.
	OnCorpusCollected func(files int, assetsRoot string)
	// OnProgress fires once per completed reference check.
	OnProgress func(done, total int)

	Logger *slog.Logger
}

// UnusedAsset is one entry of the final report.
type UnusedAsset struct {
	Path      string `json:"path"`
	RelPath   string `json:"rel_path"`
	SizeBytes int64  `json:"size_bytes"`
}

// Report is the plain result of a completed run.
type Report struct {
	RunID       string        `json:"run_id"`
	AssetsRoot  string        `json:"assets_root"`
	IndexCount  int           `json:"index_count"`
	CorpusCount int           `json:"corpus_count"`
	Unused      []UnusedAsset `json:"unused"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// TotalSizeBytes sums the on-disk sizes of all unused assets.
func (r *Report) TotalSizeBytes() int64 {
	var total int64
	for _, asset := range r.Unused {
		total += asset.SizeBytes
	}
	return total
}

// Run executes the full pipeline and returns the report. Structural problems
// (bad directory, bad parallelism, no Assets root) abort before any search
// work starts; per-file read failures never abort the run.
func Run(ctx context.Context, opts Options) (*Report, error) {
	started := time.Now()
	runID := uuid.NewString()
	logger := logging.NewComponentLogger(opts.Logger, "scan").With(logging.String(logging.FieldRunID, runID))

	if opts.Processes < refscan.MinWorkers || opts.Processes > refscan.MaxWorkers {
		return nil, fmt.Errorf("%w: %d is outside [%d, %d]",
			refscan.ErrInvalidParallelism, opts.Processes, refscan.MinWorkers, refscan.MaxWorkers)
	}
	if check := preflight.CheckDirectoryAccess("target directory", opts.Directory); !check.Passed {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirectory, check.Detail)
	}

	assetsRoot, err := project.FindAssetsRoot(opts.Directory)
	if err != nil {
		return nil, err
	}
	logger.Debug("located project root", logging.String("assets_root", assetsRoot))

	index, err := assetindex.Build(opts.Directory, logger)
	if err != nil {
		return nil, fmt.Errorf("build candidate index: %w", err)
	}
	if opts.OnIndexBuilt != nil {
		opts.OnIndexBuilt(len(index))
	}

	corpusFiles, err := corpus.Collect(assetsRoot, opts.Extensions, opts.Excludes, logger)
	if err != nil {
		return nil, fmt.Errorf("collect corpus: %w", err)
	}
	if opts.OnCorpusCollected != nil {
		opts.OnCorpusCollected(len(corpusFiles), assetsRoot)
	}

	items := make([]refscan.Item, 0, len(index))
	for guid, assetPath := range index {
		items = append(items, refscan.Item{GUID: guid, AssetPath: assetPath})
	}

	pool := &refscan.Pool{Workers: opts.Processes, OnProgress: opts.OnProgress}
	results, err := pool.Run(ctx, items, corpusFiles)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:       runID,
		AssetsRoot:  assetsRoot,
		IndexCount:  len(index),
		CorpusCount: len(corpusFiles),
	}
	for _, result := range results {
		if result.Referenced {
			continue
		}
		report.Unused = append(report.Unused, describeAsset(result.AssetPath, assetsRoot, logger))
	}
	sort.Slice(report.Unused, func(i, j int) bool {
		return report.Unused[i].RelPath < report.Unused[j].RelPath
	})

	report.Elapsed = time.Since(started)
	logger.Info("scan complete",
		logging.Int("assets", report.IndexCount),
		logging.Int("corpus_files", report.CorpusCount),
		logging.Int("unused", len(report.Unused)),
		logging.Duration("elapsed", report.Elapsed))
	return report, nil
}

// describeAsset resolves the report row for one unused asset. Sizes are read
// lazily here, at report time; a stat failure downgrades the size to zero
// rather than dropping the entry.
func describeAsset(path, assetsRoot string, logger *slog.Logger) UnusedAsset {
	asset := UnusedAsset{Path: path, RelPath: path}
	if rel, err := filepath.Rel(assetsRoot, path); err == nil {
		asset.RelPath = rel
	}
	if info, err := os.Stat(path); err == nil {
		asset.SizeBytes = info.Size()
	} else {
		logger.Warn("could not stat unused asset", logging.String(logging.FieldPath, path), logging.Error(err))
	}
	return asset
}
