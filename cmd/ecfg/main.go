// Ecfg is a command line utility for inspecting and editing `.ecfg`
// configuration files managed by the ecfg library.
//
// It can print a configuration in several formats, query and modify
// individual values by JSON path, show the resolved on-disk location of
// a configuration, and convert files between the plain JSON and base85
// encoded formats.
//
// Usage:
//
//	ecfg [command] [flags]
//
// See 'ecfg --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/ecfg/internal/logging"
	"github.com/muurk/ecfg/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", renderError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ecfg",
	Short: "Ecfg Configuration File Utility",
	Long: `A utility for working with .ecfg configuration files.

Configurations are JSON documents stored one-per-name, by default under
~/.empire/<name>.ecfg, optionally wrapped in a base85 text encoding.
This tool reads and writes them through the same registry the ecfg
library uses, so its view of a file always matches the library's.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ecfg %s\n", version.Full())
	},
}
