// Copyright Tzion0, 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tzion0/ThreatScrape/pkg/types"
)

func TestFilenames(t *testing.T) {
	tests := []struct {
		keyword  string
		wantJSON string
		wantCSV  string
	}{
		{"APT28", "APT28_search_results.json", "APT28_search_results.csv"},
		{"Fancy Bear", "Fancy_Bear_search_results.json", "Fancy_Bear_search_results.csv"},
		{"Lazarus Group DPRK", "Lazarus_Group_DPRK_search_results.json", "Lazarus_Group_DPRK_search_results.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			gotJSON, gotCSV := Filenames(tt.keyword)
			assert.Equal(t, tt.wantJSON, gotJSON)
			assert.Equal(t, tt.wantCSV, gotCSV)
		})
	}
}

func TestWriteJSONKeepsAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	items := []types.Item{
		{"title": "Report A", "link": "https://a.example", "snippet": "an APT report", "displayLink": "a.example"},
	}

	require.NoError(t, WriteJSON(path, items))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []types.Item
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, items, got)

	// Indented output, not a single line.
	assert.Contains(t, string(data), "\n    ")
}

func TestWriteCSV(t *testing.T) {
	tests := []struct {
		name  string
		items []types.Item
		want  string
	}{
		{
			name: "title and link present",
			items: []types.Item{
				{"title": "Report A", "link": "https://a.example"},
			},
			want: "Title,Link\nReport A,https://a.example\n",
		},
		{
			name: "missing link becomes N/A",
			items: []types.Item{
				{"title": "Report B"},
			},
			want: "Title,Link\nReport B,N/A\n",
		},
		{
			name: "missing title becomes N/A",
			items: []types.Item{
				{"link": "https://c.example"},
			},
			want: "Title,Link\nN/A,https://c.example\n",
		},
		{
			name:  "no items writes header only",
			items: nil,
			want:  "Title,Link\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.csv")
			require.NoError(t, WriteCSV(path, tt.items))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, []types.Item{
		{"title": "Report A", "link": "https://a.example"},
		{"title": "Report B"},
	})

	assert.Equal(t, "1. Report A\nhttps://a.example\n\n2. Report B\nN/A\n\n", buf.String())
}
