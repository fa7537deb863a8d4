// Package cli provides the Cobra command structure for quotefmt.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/quotefmt/quotefmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root quotefmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "quotefmt",
		Short: "Normalize quote delimiters in Python string literals",
		Long: `quotefmt rewrites the quote delimiters of Python string literals into a
canonical form: double quotes by default, single quotes for empty strings
and single characters. Raw strings, f-strings, multiline strings, and
docstrings are left untouched, and the decoded value of every literal is
preserved exactly.

Only the quote characters change. Whitespace, comments, and every other
byte of the source stay as they were.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
