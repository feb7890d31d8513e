// Package cmd is for command line interactions with the fastx application
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is the release version, overridable at build time via
// -ldflags "-X github.com/sunitj/fastx-mcp/cmd.Version=...".
var Version = "1.0.0"

var (
	cfgPath string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "fastx",
	Short: `Convert and manipulate FASTA/FASTQ/GenBank sequence files,
locally or through the FastX-MCP HTTP server`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file (fastx.yaml in the working directory by default)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newLogger builds the structured logger at the configured level. The
// --verbose flag wins over the config file.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	if verbose {
		logger.SetLevel(log.DebugLevel)
		return logger
	}
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}
