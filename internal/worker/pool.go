// Package worker runs file resolutions concurrently for batch mode.
package worker

import (
	"context"
	"sort"
	"sync"

	"github.com/demetriusmayo/PathOfSearching/internal/model"
)

// RunFunc resolves one item-dump file into a report
type RunFunc func(ctx context.Context, path string) (*model.Report, error)

// Outcome is the result of resolving one file
type Outcome struct {
	Path   string
	Report *model.Report
	Err    error
}

// Pool resolves many files with a bounded number of workers
type Pool struct {
	workers int
	run     RunFunc
}

// NewPool creates a pool with the given worker count
func NewPool(workers int, run RunFunc) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers, run: run}
}

// Resolve runs every path through the pool and returns one outcome per path,
// sorted by path for stable output. Cancellation of ctx stops workers from
// picking up further jobs; files already in flight finish.
func (p *Pool) Resolve(ctx context.Context, paths []string) []Outcome {
	jobs := make(chan string)
	outcomes := make(chan Outcome, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				select {
				case <-ctx.Done():
					outcomes <- Outcome{Path: path, Err: ctx.Err()}
					continue
				default:
				}
				report, err := p.run(ctx, path)
				outcomes <- Outcome{Path: path, Report: report, Err: err}
			}
		}()
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()
	close(outcomes)

	results := make([]Outcome, 0, len(paths))
	for o := range outcomes {
		results = append(results, o)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results
}
