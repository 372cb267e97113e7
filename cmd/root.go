package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/dataquery-cli/internal/config"
	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
	"github.com/KaramelBytes/dataquery-cli/internal/logging"
)

var (
	// Global flags
	cfgFile    string
	debug      bool
	flagFormat string

	// Loaded configuration
	cfg *cfgpkg.Global
	log = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "dataquery",
	Short: "dataquery: profile a CSV file and ask questions about it",
	Long: `dataquery loads a CSV file into an in-memory table, profiles its columns,
prepares chart-ready series for a pair of columns, and answers plain-English
questions such as "what is the average price?" or "show distribution of region".`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.dataquery/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "output format: text|json (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{
			MaxInputBytes: dataset.DefaultMaxInputBytes,
			OutputFormat:  cfgpkg.FormatText,
			LogLevel:      "info",
			SampleRows:    5,
		}
	}
	cfg = c

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	l, err := logging.New(os.Stderr, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v\n", err)
		l, _ = logging.New(os.Stderr, "info")
	}
	log = l
}

// datasetOptions applies the configured input limit and logger.
func datasetOptions() dataset.Options {
	opt := dataset.DefaultOptions()
	if cfg != nil {
		opt.MaxInputBytes = cfg.MaxInputBytes
	}
	l := log
	opt.Logger = &l
	return opt
}

// outputFormat resolves --format, then config, then text.
func outputFormat() (string, error) {
	f := flagFormat
	if f == "" && cfg != nil {
		f = cfg.OutputFormat
	}
	switch f {
	case "", cfgpkg.FormatText:
		return cfgpkg.FormatText, nil
	case cfgpkg.FormatJSON:
		return cfgpkg.FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported --format: %s (use text|json)", f)
}
