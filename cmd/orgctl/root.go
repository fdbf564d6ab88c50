package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/orgtrace/internal/config"
	"github.com/joshuapare/orgtrace/internal/logger"
	"github.com/joshuapare/orgtrace/org/printer"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configPath string
	logDir     string
	encoding   string

	// cfg is loaded before any subcommand runs.
	cfg = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "orgctl",
	Short: "Rebuild org hierarchies from record dumps and trace encrypted fingerprints",
	Long: `orgctl cleans corrupted organization record dumps, rebuilds the
boss / hands / supports hierarchy they describe, and searches a small
mask space to find which member an encrypted fingerprint belongs to.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON logs to this directory")
	rootCmd.PersistentFlags().StringVar(&encoding, "encoding", "", "Input encoding (UTF-8, UTF-16LE, WINDOWS-1252)")
}

// setup loads configuration, applies global flag overrides and initializes logging.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("encoding") {
		loaded.Input.Encoding = encoding
	}
	if flags.Changed("log-dir") {
		loaded.Logging.Dir = logDir
	}
	if verbose {
		loaded.Logging.Level = "debug"
	}
	if jsonOut {
		loaded.Output.Format = "json"
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	level, _ := logger.ParseLevel(cfg.Logging.Level)
	return logger.Init(logger.Options{
		Enabled: verbose || cfg.Logging.Dir != "",
		LogDir:  cfg.Logging.Dir,
		Level:   level,
	})
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// stdout returns the destination for command results; quiet mode discards them
func stdout() io.Writer {
	if quiet {
		return io.Discard
	}
	return os.Stdout
}

// wantJSON reports whether command results should be rendered as JSON
func wantJSON() bool {
	return cfg.Output.Format == string(printer.FormatJSON)
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(stdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
