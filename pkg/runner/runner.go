package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Runner orchestrates multi-file rewriting using a Pipeline.
type Runner struct {
	// Pipeline handles per-file processing with safety guarantees.
	Pipeline *Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Each file gets its own snapshot and edit list, so workers share nothing
// but the outcome slice, and outcomes land at their file's discovery index.
// The returned Result lists files in discovery order regardless of which
// worker finished first.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	pipelineOpts := PipelineOptionsFromConfig(opts.Config)
	outcomes := make([]FileOutcome, len(files))
	indexCh := make(chan int)

	var wg sync.WaitGroup
	for n := 0; n < workerCount(opts.Jobs, len(files)); n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexCh {
				outcomes[i] = r.processOne(ctx, files[i], pipelineOpts)
			}
		}()
	}

	// Feed indices from this goroutine; stop feeding on cancellation so
	// workers drain and exit.
feed:
	for i := range files {
		select {
		case <-ctx.Done():
			break feed
		case indexCh <- i:
		}
	}
	close(indexCh)
	wg.Wait()

	for _, outcome := range outcomes {
		if outcome.Path == "" {
			// Never dispatched before cancellation.
			continue
		}
		result.accumulate(outcome)
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// workerCount clamps the configured job count to [1, files].
func workerCount(jobs, files int) int {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > files {
		jobs = files
	}
	if jobs < 1 {
		jobs = 1
	}
	return jobs
}

// processOne runs the pipeline for a single file and packages the outcome.
func (r *Runner) processOne(ctx context.Context, path string, opts PipelineOptions) FileOutcome {
	outcome := FileOutcome{Path: path}

	if err := ctx.Err(); err != nil {
		outcome.Error = fmt.Errorf("processing cancelled: %w", err)
		return outcome
	}

	pr, err := r.Pipeline.ProcessFile(ctx, path, opts)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	outcome.Result = pr
	return outcome
}
