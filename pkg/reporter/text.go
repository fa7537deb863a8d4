package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/quotefmt/quotefmt/internal/ui/pretty"
	"github.com/quotefmt/quotefmt/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var changed int

	for _, file := range result.Files {
		displayPath := relativePath(r.opts.WorkingDir, file.Path)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(displayPath),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		pr := file.Result
		if pr == nil {
			continue
		}

		if pr.Skipped {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(displayPath),
				r.styles.Changed.Render(pr.Summary()),
			)
			continue
		}

		if !pr.Changed {
			continue
		}
		changed++

		literalWord := "literals"
		if pr.EditsApplied == 1 {
			literalWord = "literal"
		}
		fmt.Fprintf(r.bw, "%s: %s %s\n",
			r.styles.FilePath.Render(displayPath),
			r.styles.Changed.Render(fmt.Sprintf("%d %s", pr.EditsApplied, literalWord)),
			r.styles.Dim.Render(pr.Summary()),
		)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return changed, nil
}
