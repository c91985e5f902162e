// Package main provides the biblib CLI entry point, a thin demonstration
// wrapper around the core parsing and deduplication library. It is not
// part of the library's contract.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitConfigError = 2
	ExitDataError   = 3
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "biblib",
	Short: "Parse and deduplicate bibliographic citation files",
	Long: `biblib is a demonstration CLI around the biblib library.

It detects and parses RIS, PubMed/MEDLINE, EndNote XML, and delimited
citation exports, and can deduplicate the resulting records by
similarity and field agreement. It is a reference wrapper, not part of
the library's API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}

func exitWithError(code int, format string, args ...interface{}) {
	cobraErrf(format, args...)
	os.Exit(code)
}

func cobraErrf(format string, args ...interface{}) {
	rootCmd.PrintErrf("error: "+format+"\n", args...)
}
