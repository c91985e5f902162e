package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/revidiumhq/biblib"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Detect a citation file's format and parse it to JSON",
	Long: `Detect a citation file's format and parse it to JSON.

Usage:
  biblib parse refs.ris
  biblib parse refs.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", path, err)
	}

	citations, format, cerr := biblib.DetectAndParse(string(content))
	if cerr != nil {
		if cerr.Parse != nil {
			fmt.Fprintln(os.Stderr, biblib.RenderDiagnostic(path, string(content), cerr.Parse))
			exitWithError(ExitDataError, "parse failed")
		}
		exitWithError(ExitDataError, "could not detect citation format for %s", path)
	}

	out := struct {
		Format    string            `json:"format"`
		Citations []biblib.Citation `json:"citations"`
	}{Format: format.String(), Citations: citations}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
