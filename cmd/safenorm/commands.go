package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/safenorm"
)

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [file|-]",
		Short: "Normalize a document to a bounded JSON-safe tree",
		Long: `Normalize reads a JSON or YAML document, walks it with the configured depth
and lowers the depth until its JSON encoding fits in --max-size bytes.

Examples:
  # Normalize a file
  safenorm normalize event.json

  # Normalize from stdin and print YAML
  cat event.yaml | safenorm normalize --format yaml --output yaml -`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runNormalize,
	}
}

func (a *app) runNormalize(cmd *cobra.Command, args []string) error {
	doc, err := readDocument(cmd.InOrStdin(), inputName(args), a.cfg.Output.Format, a.cfg.Normalize.NumberMode)
	if err != nil {
		return err
	}

	out := a.norm.NormalizeToSize(doc, a.cfg.Normalize.Depth, a.cfg.Normalize.MaxSize)
	a.logger.Debug("normalized document",
		zap.String("input", inputName(args)),
		zap.Int("depth", a.cfg.Normalize.Depth),
		zap.Int("size", a.norm.JSONSize(out)))

	return writeDocument(cmd.OutOrStdout(), out, a.cfg.Output.Encode, a.cfg.Output.Indent)
}

func (a *app) keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys [file|-]",
		Short: "Summarize the top-level keys of a document",
		Long: `Keys prints the sorted top-level keys of a document, joined by ", " and
bounded by --max-length, as used in "Non-error exception captured with keys"
messages.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runKeys,
	}
}

func (a *app) runKeys(cmd *cobra.Command, args []string) error {
	doc, err := readDocument(cmd.InOrStdin(), inputName(args), a.cfg.Output.Format, a.cfg.Normalize.NumberMode)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), a.norm.ExtractExceptionKeysForMessage(doc, a.cfg.Keys.MaxLength))
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "safenorm %s (json driver: %s)\n",
				version, safenorm.CurrentJSONDriver().Name())
			return err
		},
	}
}

func inputName(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
