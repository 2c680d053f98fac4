// Copyright Tzion0, 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/Tzion0/ThreatScrape/internal/expand"
	"github.com/Tzion0/ThreatScrape/pkg/types"
)

// HuntFile is the on-disk YAML record of one hunt: the keyword, its alias
// expansion, the assembled dorking query, and the gathered results. An
// analyst can audit or share a hunt from this file without repeating the
// API calls.
type HuntFile struct {
	Keyword   string          `yaml:"keyword"`
	Expansion ExpansionRecord `yaml:"expansion"`
	Query     string          `yaml:"query"`
	Results   []types.Item    `yaml:"results"`
	Summary   HuntSummary     `yaml:"summary"`
}

// ExpansionRecord stores the expansion outcome in a serializable form.
type ExpansionRecord struct {
	Terms    []string `yaml:"terms"`
	Fallback bool     `yaml:"fallback"`
	Reason   string   `yaml:"reason,omitempty"`
}

// HuntSummary stores result statistics and a timestamp.
type HuntSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteHuntFile saves the hunt record to a YAML file.
func WriteHuntFile(path, keyword, query string, exp expand.Expansion, items []types.Item) error {
	record := ExpansionRecord{
		Terms:    exp.Terms,
		Fallback: exp.Fallback,
	}
	if exp.Reason != nil {
		record.Reason = exp.Reason.Error()
	}

	hf := HuntFile{
		Keyword:   keyword,
		Expansion: record,
		Query:     query,
		Results:   items,
		Summary: HuntSummary{
			Total:     len(items),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&hf)
	if err != nil {
		return fmt.Errorf("marshaling hunt file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadHuntFile loads a previously saved hunt file from disk.
func ReadHuntFile(path string) (*HuntFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hunt file: %w", err)
	}
	var hf HuntFile
	if err := yaml.Unmarshal(data, &hf); err != nil {
		return nil, fmt.Errorf("parsing hunt file: %w", err)
	}
	return &hf, nil
}
