// Package cmd holds the portfolio command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reroreo1/portfolio/internal/logger"
)

var (
	debugMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a drawer-style personal portfolio over HTTP and can
render the same sections in a terminal.

Run without a subcommand to start the web server.`,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func initLogging() {
	if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("portfolio %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("portfolio %s\n", version)
}
