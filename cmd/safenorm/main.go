// Package main implements the safenorm CLI: normalize JSON or YAML documents
// and summarize their keys from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/safenorm"
	"github.com/reoring/safenorm/internal/config"
	"github.com/reoring/safenorm/internal/logging"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by subcommands once configuration is resolved.
type app struct {
	configPath string
	flags      flagValues

	cfg    *config.Config
	logger *zap.Logger
	norm   *safenorm.Normalizer
}

// flagValues holds explicit command-line overrides.
type flagValues struct {
	depth     int
	maxSize   int
	maxLength int
	logLevel  string
	logFormat string
	format    string
	output    string
	indent    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "safenorm",
		Short: "Normalize arbitrary documents into bounded, JSON-safe trees",
		Long: `safenorm converts a JSON or YAML document into a depth- and size-bounded
tree that always encodes as JSON, the way error payloads are prepared before
they are sent to a collector.

Configuration is read from --config, then SAFENORM_* environment variables,
then explicit flags.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.IntVar(&a.flags.depth, "depth", safenorm.DefaultDepth, "maximum walk depth (-1 for unlimited)")
	pf.IntVar(&a.flags.maxSize, "max-size", safenorm.DefaultMaxSize, "maximum encoded size in bytes")
	pf.IntVar(&a.flags.maxLength, "max-length", safenorm.DefaultMaxKeysLength, "maximum length of a key summary")
	pf.StringVar(&a.flags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&a.flags.logFormat, "log-format", "json", "log format (json, console)")
	pf.StringVar(&a.flags.format, "format", "auto", "input format (auto, json, yaml)")
	pf.StringVar(&a.flags.output, "output", "json", "output encoding (json, yaml, dump)")
	pf.BoolVar(&a.flags.indent, "indent", false, "indent JSON output")

	root.AddCommand(a.normalizeCmd(), a.keysCmd(), versionCmd())
	return root
}

// setup loads configuration, applies explicit flags and builds the logger and
// normalizer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := logging.NewWithWriter(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	mode, _ := cfg.Normalize.Mode()

	a.cfg = cfg
	a.logger = logger
	a.norm = safenorm.New(safenorm.WithLogger(logger), safenorm.WithNumberMode(mode))
	return nil
}

func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("depth") {
		cfg.Normalize.Depth = a.flags.depth
	}
	if changed("max-size") {
		cfg.Normalize.MaxSize = a.flags.maxSize
	}
	if changed("max-length") {
		cfg.Keys.MaxLength = a.flags.maxLength
	}
	if changed("log-level") {
		cfg.Logging.Level = a.flags.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = a.flags.logFormat
	}
	if changed("format") {
		cfg.Output.Format = a.flags.format
	}
	if changed("output") {
		cfg.Output.Encode = a.flags.output
	}
	if changed("indent") {
		cfg.Output.Indent = a.flags.indent
	}
}
