// Package scan orchestrates a full unused-asset analysis run.
//
// A run moves through strictly sequential phases: preflight the target
// directory, locate the project's Assets root, build the candidate index,
// collect the searchable corpus, then fan the per-GUID reference checks out
// across the worker pool. The index and corpus are fully materialized before
// the parallel phase begins and are never mutated afterwards.
//
// The result is a plain Report of counts, paths, and sizes; presentation
// belongs entirely to the caller.
package scan
