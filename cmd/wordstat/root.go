package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agicy/wordstat/internal/logger"
	"github.com/agicy/wordstat/pkg/config"
	"github.com/agicy/wordstat/pkg/count"
	"github.com/agicy/wordstat/pkg/metrics"
)

var (
	version = "dev"
	commit  = "none"
)

var errUsage = errors.New("usage")

type options struct {
	configPath  string
	format      string
	buckets     int
	lineLimit   int
	bufferSize  int
	metricsFile string
	verbose     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "wordstat [flags] <file>",
		Short: "Rank the words of a text file by frequency",
		Long: `wordstat reads a text file once and prints every word in it, most frequent
first, with its count and the first lines it appears on. Words are runs of
ASCII letters, compared case-insensitively.

Example:
  wordstat book.txt
  wordstat --format csv book.txt > book.csv`,
		Version: fmt.Sprintf("%s (commit %s)", version, commit),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: expected 1 argument, got %d", errUsage, len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWordstat(cmd, opts, args[0])
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "Path to a TOML or YAML config file")
	f.StringVar(&opts.format, "format", string(count.FormatText), "Report format: text or csv")
	f.IntVar(&opts.buckets, "buckets", count.DefaultBuckets, "Counts below this are ranked by bucket")
	f.IntVar(&opts.lineLimit, "line-limit", count.DefaultLineLimit, "Occurrence lines kept per word")
	f.IntVar(&opts.bufferSize, "buffer-size", 0, "Input and output buffer size in bytes (default 1 MiB)")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log pipeline progress to stderr")

	return cmd
}

func runWordstat(cmd *cobra.Command, opts *options, path string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := logger.ParseLevel(cfg.Log.Level)
	if opts.verbose {
		level = log.DebugLevel
	}
	lg := logger.NewWithConfig(cmd.ErrOrStderr(), "wordstat", level, opts.verbose)

	runOpts := cfg.Options()
	runOpts.Logger = lg

	lg.Debug("starting", "file", path, "format", runOpts.Format, "buckets", runOpts.Buckets)
	stats, err := count.File(path, cmd.OutOrStdout(), runOpts)
	if err != nil {
		return err
	}

	if cfg.Metrics.Textfile != "" {
		m := metrics.New()
		m.Observe(stats)
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			lg.Warn("failed to write metrics", "file", cfg.Metrics.Textfile, "err", err)
		}
	}
	return nil
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if f.Changed("buckets") {
		cfg.Rank.Buckets = opts.buckets
	}
	if f.Changed("line-limit") {
		cfg.Index.LineLimit = opts.lineLimit
	}
	if f.Changed("buffer-size") {
		cfg.Input.BufferSize = opts.bufferSize
		cfg.Output.BufferSize = opts.bufferSize
	}
	if f.Changed("metrics-file") {
		cfg.Metrics.Textfile = opts.metricsFile
	}
}
