package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quotefmt/quotefmt/internal/configloader"
	"github.com/quotefmt/quotefmt/internal/logging"
	"github.com/quotefmt/quotefmt/pkg/config"
	"github.com/quotefmt/quotefmt/pkg/reporter"
	"github.com/quotefmt/quotefmt/pkg/runner"
)

const fmtLongDescription = `Normalize quote delimiters in Python string literals.

By default, checks all .py and .pyi files in the current directory and
subdirectories and reports which would change. Specify paths to process
specific files or directories, or "-" to read from stdin and write the
rewritten source to stdout.

Examples:
  quotefmt fmt                   # Report pending changes in current directory
  quotefmt fmt src/              # Report pending changes under src
  quotefmt fmt --write           # Rewrite files in place
  quotefmt fmt --write --backup  # Rewrite with sidecar backups
  quotefmt fmt --check           # Exit 1 if any file would change
  quotefmt fmt --diff            # Show unified diffs without writing
  quotefmt fmt --list            # Print only the paths that would change
  quotefmt fmt - < script.py     # Rewrite stdin to stdout`

type fmtFlags struct {
	format    string
	ignore    []string
	compact   bool
	noSummary bool
}

func newFmtCommand() *cobra.Command {
	var cfg config.Config
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Normalize string literal quotes in Python files",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, &cfg, flags)
		},
	}

	addFmtFlags(cmd, &cfg, flags)

	return cmd
}

func addFmtFlags(cmd *cobra.Command, cfg *config.Config, flags *fmtFlags) {
	cmd.Flags().BoolVarP(&cfg.Write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&cfg.Check, "check", false, "exit non-zero if any file would change")
	cmd.Flags().BoolVarP(&cfg.Diff, "diff", "d", false, "print unified diffs instead of rewriting")
	cmd.Flags().BoolVarP(&cfg.ListChanged, "list", "l", false, "print only the paths of files that would change")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, diff, json, list")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&cfg.Backups.Enabled, "backup", false, "create sidecar backups before in-place writes")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")
}

func runFmt(cmd *cobra.Command, args []string, cfg *config.Config, flags *fmtFlags) error {
	logger := logging.Default()

	cfg.Ignore = flags.ignore
	if flags.format != "" {
		cfg.Format = config.OutputFormat(flags.format)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Stdin mode bypasses config discovery and the runner entirely.
	if len(args) == 1 && args[0] == "-" {
		return runFmtStdin(ctx, cmd, cfg)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("%w: get working directory: %w", ErrIO, err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldWrite, finalCfg.Write,
		logging.FieldCheck, finalCfg.Check,
		logging.FieldDiff, finalCfg.Diff,
		logging.FieldJobs, finalCfg.Jobs,
	)

	fmtRunner := runner.New(runner.NewPipeline())
	runOpts := runner.OptionsFromConfig(finalCfg, args, workDir)

	logger.Debug("starting run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := fmtRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	rep, err := newReporter(cmd, finalCfg, flags, workDir)
	if err != nil {
		return err
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("%w: report results: %w", ErrIO, err)
	}

	if result.HasErrors() {
		return ErrFilesErrored
	}
	if finalCfg.Check && result.HasChanges() {
		return ErrChangesFound
	}

	return nil
}

// newReporter builds the reporter for the resolved configuration, mapping
// the list mode onto the list format.
func newReporter(cmd *cobra.Command, cfg *config.Config, flags *fmtFlags, workDir string) (reporter.Reporter, error) {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format := reporter.Format(cfg.Format)
	switch {
	case cfg.ListChanged:
		format = reporter.FormatList
	case cfg.Diff && format == reporter.FormatText:
		format = reporter.FormatDiff
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: unknown format %q", ErrConfig, cfg.Format)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create reporter: %w", ErrConfig, err)
	}
	return rep, nil
}

// runFmtStdin reads Python source from stdin and writes the rewritten
// source to stdout. Check mode exits non-zero without printing content;
// diff mode prints a unified diff instead.
func runFmtStdin(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	if cfg.Write {
		return fmt.Errorf("%w: --write cannot be combined with stdin input", ErrConfig)
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logging.Default().Warn("reading from terminal; pipe Python source or press Ctrl-D to finish")
	}

	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("%w: read stdin: %w", ErrIO, err)
	}

	opts := runner.PipelineOptionsFromConfig(cfg)
	pr, err := runner.NewPipeline().ProcessContent(ctx, "<stdin>", content, opts)
	if err != nil {
		if errors.Is(err, runner.ErrParseFailure) {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
		return err
	}

	out := cmd.OutOrStdout()

	switch {
	case cfg.Check:
		if pr.Changed {
			return ErrChangesFound
		}
		return nil
	case cfg.Diff:
		if pr.Diff.HasChanges() {
			fmt.Fprint(out, pr.Diff.String())
		}
		return nil
	default:
		if pr.Changed {
			_, err = out.Write(pr.RewrittenContent)
		} else {
			_, err = out.Write(content)
		}
		if err != nil {
			return fmt.Errorf("%w: write stdout: %w", ErrIO, err)
		}
		return nil
	}
}
