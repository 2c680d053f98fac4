// Copyright Tzion0, 2026. All rights reserved.

// Package report writes gathered search results to disk and the console.
// The JSON file keeps every upstream field of each result; the CSV file and
// console output read only title and link.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Tzion0/ThreatScrape/pkg/types"
)

// missingField is written wherever a result lacks a title or link.
const missingField = "N/A"

// Filenames derives the JSON and CSV output paths from the search keyword.
// Spaces become underscores so the keyword works as a file-name stem.
func Filenames(keyword string) (jsonPath, csvPath string) {
	stem := strings.ReplaceAll(keyword, " ", "_")
	return stem + "_search_results.json", stem + "_search_results.csv"
}

// WriteJSON serializes the full result objects as indented JSON.
func WriteJSON(path string, items []types.Item) error {
	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteCSV writes a two-column Title,Link table with one row per result.
func WriteCSV(path string, items []types.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Title", "Link"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, it := range items {
		if err := w.Write([]string{orMissing(it.Title()), orMissing(it.Link())}); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// Print writes each result to w as a 1-based index, title and link,
// separated by blank lines.
func Print(w io.Writer, items []types.Item) {
	for i, it := range items {
		fmt.Fprintf(w, "%d. %s\n%s\n\n", i+1, orMissing(it.Title()), orMissing(it.Link()))
	}
}

func orMissing(s string) string {
	if s == "" {
		return missingField
	}
	return s
}
