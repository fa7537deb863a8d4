package reporter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/quotefmt/quotefmt/internal/ui/pretty"
	"github.com/quotefmt/quotefmt/pkg/fix"
	"github.com/quotefmt/quotefmt/pkg/runner"
)

// DiffReporter renders each changed file as a git-style unified diff.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		out:    opts.Writer,
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var changed, additions, deletions int
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.out, "%s: %s\n",
				r.styles.FilePath.Render(relativePath(r.opts.WorkingDir, file.Path)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Result == nil || !file.Result.Diff.HasChanges() {
			continue
		}

		changed++
		additions += file.Result.Diff.Additions
		deletions += file.Result.Diff.Deletions
		r.writeDiff(file.Result.Diff)
	}

	if changed > 0 && r.opts.ShowSummary {
		r.writeSummary(changed, additions, deletions)
	}

	return changed, nil
}

// writeDiff renders one file's hunks with git-style headers.
func (r *DiffReporter) writeDiff(diff *fix.Diff) {
	path := relativePath(r.opts.WorkingDir, diff.Path)

	fmt.Fprintln(r.out, r.styles.DiffHeader.Render(fmt.Sprintf("diff --git a/%s b/%s", path, path)))
	fmt.Fprintln(r.out, r.styles.DiffRemove.Render("--- a/"+path))
	fmt.Fprintln(r.out, r.styles.DiffAdd.Render("+++ b/"+path))

	for _, hunk := range diff.Hunks {
		fmt.Fprintln(r.out, r.styles.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OrigStart, hunk.OrigCount, hunk.NewStart, hunk.NewCount)))
		for _, line := range hunk.Lines {
			r.writeHunkLine(line)
		}
	}

	fmt.Fprintln(r.out)
}

// writeHunkLine prefixes and styles a single hunk line.
func (r *DiffReporter) writeHunkLine(line fix.Line) {
	switch line.Kind {
	case fix.LineAdd:
		fmt.Fprintln(r.out, r.styles.DiffAdd.Render("+"+line.Text))
	case fix.LineRemove:
		fmt.Fprintln(r.out, r.styles.DiffRemove.Render("-"+line.Text))
	default:
		fmt.Fprintln(r.out, r.styles.DiffContext.Render(" "+line.Text))
	}
}

// writeSummary writes the git-style shortstat line.
func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	parts := []string{fmt.Sprintf("%d %s changed", files, pluralize(files, "file", "files"))}

	if additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(
			fmt.Sprintf("%d %s(+)", additions, pluralize(additions, "insertion", "insertions"))))
	}
	if deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(
			fmt.Sprintf("%d %s(-)", deletions, pluralize(deletions, "deletion", "deletions"))))
	}

	fmt.Fprintln(r.out, strings.Join(parts, ", "))
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
