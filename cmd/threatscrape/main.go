// Package main is the entry point for the threatscrape CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir is where key-per-file credentials are read at startup.
const secretsDir = ".secrets/"

var (
	cfgPath  string
	savePath string
)

// rootCmd runs the whole pipeline for one search keyword.
var rootCmd = &cobra.Command{
	Use:   "threatscrape <keyword>",
	Short: "Google dorking search for APT, malware and threat reports",
	Long: `threatscrape hunts open-source threat-intelligence reports for a named
threat actor. The actor name is expanded into known aliases via the Gemini
API, combined with site exclusions and required in-text keywords into a
single dorking query, and run through the Google Custom Search API.

Results are printed to stdout and written to <keyword>_search_results.json
and <keyword>_search_results.csv in the current directory.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], cfgPath, savePath)
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgPath, "config", "config.json", "path to the configuration file")
	rootCmd.Flags().StringVar(&savePath, "save", "", "also write a YAML hunt file to this path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
