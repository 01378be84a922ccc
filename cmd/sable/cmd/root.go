// Package cmd implements the sable command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sable-lang/sable/internal/config"
)

var (
	flagConfig    string
	flagFormat    string
	flagNoColor   bool
	flagMaxDepth  int
	flagMaxTokens int

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "sable",
	Short:         "Front end tooling for the Sable language",
	Long:          "Sable tokenizes and parses Sable source files, reporting diagnostics\nand dumping token streams and syntax trees for downstream tooling.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if flagConfig != "" {
			cfg, err = config.Load(flagConfig)
		} else {
			cfg, err = config.Discover()
		}
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("format") {
			cfg.Output.Format = flagFormat
		}
		if flagNoColor {
			cfg.Output.Color = false
		}
		if cmd.Flags().Changed("max-depth") {
			cfg.Limits.MaxDepth = flagMaxDepth
		}
		if cmd.Flags().Changed("max-tokens") {
			cfg.Limits.MaxTokens = flagMaxTokens
		}
		return cfg.Validate()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sable:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to a sable.toml config file")
	pf.StringVar(&flagFormat, "format", config.FormatText, "output format: text, json, or yaml")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colored diagnostics")
	pf.IntVar(&flagMaxDepth, "max-depth", 0, "maximum parse nesting depth")
	pf.IntVar(&flagMaxTokens, "max-tokens", 0, "maximum tokens per file")
}
