// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ANSI 256 palette used across the CLI.
const (
	colorDim    = lipgloss.Color("8")
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorCyan   = lipgloss.Color("14")
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// File components
	FilePath lipgloss.Style
	Location lipgloss.Style
	Error    lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style
	Changed      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a Styles set. With color disabled every style is the
// zero lipgloss.Style, which renders text unchanged.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return &Styles{}
	}

	bold := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(colorDim)
	green := lipgloss.NewStyle().Foreground(colorGreen)
	red := lipgloss.NewStyle().Foreground(colorRed)

	return &Styles{
		FilePath: bold,
		Location: dim,
		Error:    red.Bold(true),

		DiffHeader:  bold,
		DiffHunk:    lipgloss.NewStyle().Foreground(colorCyan),
		DiffAdd:     green,
		DiffRemove:  red,
		DiffContext: dim,

		SummaryTitle: bold,
		SummaryValue: lipgloss.NewStyle(),
		Success:      green.Bold(true),
		Failure:      red.Bold(true),
		Changed:      lipgloss.NewStyle().Foreground(colorYellow),

		Dim:  dim,
		Bold: bold,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and
// writer. Mode values: "auto" (default), "always", "never". In auto mode,
// color is enabled only if the writer is a TTY and NO_COLOR is unset
// (https://no-color.org/).
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
