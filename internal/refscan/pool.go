package refscan

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Worker count bounds for a scan.
const (
	MinWorkers = 1
	MaxWorkers = 32
)

var (
	// ErrInvalidParallelism indicates a worker count outside [MinWorkers, MaxWorkers].
	ErrInvalidParallelism = errors.New("invalid number of workers")
	// ErrWorkerFailure indicates an unexpected fault inside a pool worker.
	ErrWorkerFailure = errors.New("reference scan worker failed")
)

// Pool executes reference checks across a fixed number of workers.
type Pool struct {
	// Workers is the exact number of concurrent goroutines, in [MinWorkers, MaxWorkers].
	Workers int
	// OnProgress, when set, is invoked once per completed item with the number
	// of items finished so far and the total. Completion order is unspecified.
	OnProgress func(done, total int)

	// resolve is replaceable in tests; nil means FindReferences.
	resolve func(guid string, corpusFiles []string, assetPath string) Result
}

// Run checks every item against corpusFiles and returns one Result per item
// in completion order. A worker panic cancels the run and is returned as an
// error wrapping ErrWorkerFailure; no retry is attempted. Cancellation of ctx
// stops dispatch and returns ctx's error.
func (p *Pool) Run(ctx context.Context, items []Item, corpusFiles []string) ([]Result, error) {
	if p.Workers < MinWorkers || p.Workers > MaxWorkers {
		return nil, fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidParallelism, p.Workers, MinWorkers, MaxWorkers)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan Item)
	results := make(chan Result)
	failures := make(chan error, p.Workers)

	var wg sync.WaitGroup
	for i := 0; i < p.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range jobs {
				result, err := p.checkOne(item, corpusFiles)
				if err != nil {
					failures <- err
					cancel()
					return
				}
				select {
				case results <- result:
				case <-runCtx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, item := range items {
			select {
			case jobs <- item:
			case <-runCtx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]Result, 0, len(items))
	done := 0
	for result := range results {
		done++
		if p.OnProgress != nil {
			p.OnProgress(done, len(items))
		}
		collected = append(collected, result)
	}

	select {
	case err := <-failures:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return collected, nil
}

// checkOne shields the pool from panics in the resolver so a single bad item
// turns into a run-level error instead of crashing the process.
func (p *Pool) checkOne(item Item, corpusFiles []string) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: checking %s: %v", ErrWorkerFailure, item.GUID, r)
		}
	}()
	resolve := p.resolve
	if resolve == nil {
		resolve = FindReferences
	}
	return resolve(item.GUID, corpusFiles, item.AssetPath), nil
}
