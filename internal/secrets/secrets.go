// Copyright Tzion0, 2026. All rights reserved.

// Package secrets loads API credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key
// name and the file contents (trimmed) are the value. Secrets only fill
// credential fields the config file left empty; config values win.
//
// Supported key files: gemini-api-key, google-api-key, search-engine-id.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Tzion0/ThreatScrape/pkg/types"
)

// Key file names recognized by Apply.
const (
	KeyGemini   = "gemini-api-key"
	KeyGoogle   = "google-api-key"
	KeyEngineID = "search-engine-id"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty map.
// Unreadable files are logged and skipped.
func Load(dir string, logger zerolog.Logger) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn().Err(err).Str("secret", name).Msg("could not read secret file")
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Apply fills empty credential fields of cfg from the secrets map.
func Apply(cfg *types.Config, secrets map[string]string) {
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = secrets[KeyGemini]
	}
	if cfg.GoogleAPIKey == "" {
		cfg.GoogleAPIKey = secrets[KeyGoogle]
	}
	if cfg.SearchEngineID == "" {
		cfg.SearchEngineID = secrets[KeyEngineID]
	}
}
