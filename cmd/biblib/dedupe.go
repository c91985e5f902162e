package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/revidiumhq/biblib"
	"github.com/revidiumhq/biblib/dedupe"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dedupeConfigPath string

func init() {
	dedupeCmd.Flags().StringVar(&dedupeConfigPath, "config", "", "Path to a YAML DeduplicatorConfig file")
	rootCmd.AddCommand(dedupeCmd)
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe <file>",
	Short: "Detect a citation file's format, parse it, and find duplicate groups",
	Long: `Detect a citation file's format, parse it, and find duplicate groups.

Usage:
  biblib dedupe refs.ris
  biblib dedupe refs.ris --config dedupe.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runDedupe,
}

// dedupeConfigFile mirrors dedupe.Config for YAML decoding; the core
// library's Config has no serialization tags of its own, since loading
// it from a file is a CLI concern, not a library one.
type dedupeConfigFile struct {
	GroupByYear       *bool    `yaml:"group_by_year"`
	RunInParallel     bool     `yaml:"run_in_parallel"`
	SourcePreferences []string `yaml:"source_preferences"`
}

func loadDedupeConfig(path string) (dedupe.Config, error) {
	cfg := dedupe.NewConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	var file dedupeConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if file.GroupByYear != nil {
		cfg.GroupByYear = *file.GroupByYear
	}
	cfg.RunInParallel = file.RunInParallel
	cfg.SourcePreferences = file.SourcePreferences
	return cfg, nil
}

func runDedupe(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", path, err)
	}

	cfg, err := loadDedupeConfig(dedupeConfigPath)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	citations, _, cerr := biblib.DetectAndParse(string(content))
	if cerr != nil {
		exitWithError(ExitDataError, "%v", cerr)
	}

	groups, err := dedupe.FindDuplicatesWithConfig(citations, cfg)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(groups)
}
