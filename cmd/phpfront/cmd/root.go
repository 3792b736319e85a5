// Package cmd implements the phpfront command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phpfront/phpfront/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config

	formatFlag string
	statsFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "phpfront",
	Short: "A fault-tolerant PHP parser: bytes in, AST and diagnostics out.",
	Long: `phpfront lexes and parses PHP source (through PHP 8.5 syntax) and
always produces a best-effort AST alongside an ordered list of parse
diagnostics, even for invalid input.`,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cfg = loaded
		if c.Flags().Changed("format") {
			cfg.Format = formatFlag
		}
		if c.Flags().Changed("stats") {
			cfg.Stats = statsFlag
		}
		return nil
	},
	Run: func(c *cobra.Command, args []string) {
		c.Help()
	},
}

// Execute runs the root command; it is the sole entry point called
// from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML, default none)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "output format: text or json (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&statsFlag, "stats", false, "print a byte/statement/error summary (overrides config)")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(replCmd)
}
