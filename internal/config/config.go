// Copyright Tzion0, 2026. All rights reserved.

// Package config loads the ThreatScrape configuration file into a typed
// Config and applies documented defaults. Validation happens once here;
// the rest of the program never touches the raw file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Tzion0/ThreatScrape/pkg/types"
)

const (
	// DefaultTotalResults caps result gathering when TOTAL_RESULTS is absent.
	DefaultTotalResults = 50

	// DefaultPageSize is the per-page result count for the Custom Search API.
	DefaultPageSize = 10

	// DefaultPageDelay is the pause after each fetched search page.
	DefaultPageDelay = time.Second

	// DefaultTimeout bounds every outbound HTTP request.
	DefaultTimeout = 10 * time.Second
)

// credentialKeys are bound to THREATSCRAPE_* environment variables so keys
// can be supplied without writing them into the config file.
var credentialKeys = []string{"gemini_api_key", "google_api_key", "cx"}

// Load reads the JSON configuration at path. A missing or malformed file is
// an error; no partial config is synthesized. Absent optional keys fall back
// to the package defaults, and THREATSCRAPE_* environment variables override
// file values.
func Load(path string) (types.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("total_results", DefaultTotalResults)
	v.SetDefault("page_size", DefaultPageSize)
	v.SetDefault("page_delay", DefaultPageDelay)
	v.SetDefault("timeout", DefaultTimeout)

	v.SetEnvPrefix("THREATSCRAPE")
	v.AutomaticEnv()
	for _, key := range credentialKeys {
		v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		return types.Config{}, fmt.Errorf("loading config file %s: %w", path, err)
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	normalize(&cfg)
	return cfg, nil
}

// normalize replaces out-of-range numeric settings with the defaults.
// A zero PageDelay is kept: it means no pause between pages.
func normalize(cfg *types.Config) {
	if cfg.TotalResults <= 0 {
		cfg.TotalResults = DefaultTotalResults
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.PageDelay < 0 {
		cfg.PageDelay = DefaultPageDelay
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
}
