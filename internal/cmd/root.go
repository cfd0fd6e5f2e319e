package cmd

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/petrarca/gemfile-parser/internal/config"
)

var settings = config.LoadSettings()

var rootCmd = &cobra.Command{
	Use:   "gemfile-parser",
	Short: "Dependency extractor for Ruby Gemfiles and gemspec files",
	Long: `gemfile-parser reads Ruby dependency manifests (Gemfiles and gemspec
files) and extracts a categorized collection of dependency records, grouped
by lifecycle stage (runtime, development, test, production, metrics).

The input is matched line by line against fixed patterns; no Ruby code is
evaluated.`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&settings.Format, "format", "f", settings.Format, "Output format: text, json, yaml")
	rootCmd.PersistentFlags().StringVarP(&settings.OutputFile, "output", "o", settings.OutputFile, "Output file path (default: stdout)")
	rootCmd.PersistentFlags().String("log-level", settings.LogLevel.String(), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", settings.LogFormat, "Log format: text or json")
	rootCmd.PersistentFlags().String("log-file", settings.LogFile, "Log file path (default: stderr)")
}

// configureLogging sets up logging based on command flags
func configureLogging(cmd *cobra.Command) *slog.Logger {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	logFile, _ := cmd.Flags().GetString("log-file")

	if level, err := config.ParseLogLevel(logLevel); err == nil {
		settings.LogLevel = level
	}
	settings.LogFormat = logFormat
	settings.LogFile = logFile

	return settings.ConfigureLogger()
}
