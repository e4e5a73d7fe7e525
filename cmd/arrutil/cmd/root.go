package cmd

import (
	"errors"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile      string
	logLevel     string
	logFormat    string
	inputPath    string
	outputFormat string
	noColor      bool
)

// appFs backs input files and temp files. Tests swap it for a memory filesystem.
var appFs = afero.NewOsFs()

// errNoMatch is returned by lookup commands run with --exit-code when nothing matched.
var errNoMatch = errors.New("no match")

var rootCmd = &cobra.Command{
	Use:   "arrutil",
	Short: "Array and string helpers for JSON and YAML documents",
	Long: `Arrutil applies small collection and text helpers to a JSON or YAML
document read from a file or standard input.

Features:
  - Pluck a field from every record of a sequence
  - Flatten nested mappings and sequences into one level
  - Case-insensitive membership and search
  - Prefix sequence values or mapping keys
  - Filter a mapping down to a set of keys
  - Extract the first capture group of a delimited regex
  - Write content to a uniquely named temporary file`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNoMatch) {
			rootCmd.PrintErrln("Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (optional)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Input and output
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "-",
		"Input document path, - for stdin")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "",
		"Override output format (json, yaml, table)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored status lines")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel     string
	LogFormat    string
	OutputFormat string
	NoColor      bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		OutputFormat: outputFormat,
		NoColor:      noColor,
	}
}
