package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quotefmt/quotefmt/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "7 literals rewritten in 3 files (42 files checked)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesChanged == 0 {
		msg := s.Success.Render("All quotes already canonical") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, pluralFile(stats.FilesProcessed)))
		if stats.FilesErrored > 0 {
			msg += ", " + s.Failure.Render(fmt.Sprintf("%d errored", stats.FilesErrored))
		}
		return msg + "\n"
	}

	var parts []string

	literalWord := "literals"
	if stats.LiteralsRewritten == 1 {
		literalWord = "literal"
	}
	parts = append(parts, fmt.Sprintf("%d %s rewritten in %d %s",
		stats.LiteralsRewritten, literalWord, stats.FilesChanged, pluralFile(stats.FilesChanged)))

	if stats.FilesWritten > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d written", stats.FilesWritten)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Changed.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}

	parts = append(parts, s.Dim.Render(fmt.Sprintf("%d %s checked", stats.FilesProcessed, pluralFile(stats.FilesProcessed))))

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesChanged > 0 {
		builder.WriteString("  Files changed:      " +
			s.Changed.Render(strconv.Itoa(stats.FilesChanged)) + "\n")
	}
	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:      " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}
	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:      " +
			s.Changed.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("  Literals rewritten: " +
		s.SummaryValue.Render(strconv.Itoa(stats.LiteralsRewritten)) + "\n")

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Completed with errors"))
	case stats.FilesChanged > 0:
		builder.WriteString(s.Changed.Render("Changes found"))
	default:
		builder.WriteString(s.Success.Render("All quotes canonical"))
	}
	builder.WriteString("\n")

	return builder.String()
}

func pluralFile(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}
