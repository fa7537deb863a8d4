package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/quotefmt/quotefmt/pkg/runner"
)

// ListReporter prints only the paths of files whose content changed,
// one per line. Intended for piping into other tools.
type ListReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewListReporter creates a new list reporter.
func NewListReporter(opts Options) *ListReporter {
	return &ListReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *ListReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var changed int
	for _, file := range result.Files {
		if file.Error != nil || file.Result == nil {
			continue
		}
		if !file.Result.Changed {
			continue
		}
		changed++
		fmt.Fprintln(r.bw, relativePath(r.opts.WorkingDir, file.Path))
	}

	return changed, nil
}
