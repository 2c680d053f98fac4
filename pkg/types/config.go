package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 10s).
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

// Config is the full runtime configuration, loaded once per run from the
// JSON config file and immutable afterwards. The mapstructure tags match
// the config file's key names (viper lowercases them, so the file may use
// the traditional upper-case spelling such as GEMINI_API_KEY).
type Config struct {
	HTTPConfig `mapstructure:",squash"`

	// GeminiAPIKey authenticates against the Gemini generative-language API.
	// Optional: without it keyword expansion falls back to the bare search term.
	GeminiAPIKey string `json:"gemini_api_key,omitempty" mapstructure:"gemini_api_key"`

	// GoogleAPIKey authenticates against the Google Custom Search JSON API.
	GoogleAPIKey string `json:"google_api_key,omitempty" mapstructure:"google_api_key"`

	// SearchEngineID is the Programmable Search Engine identifier (the cx parameter).
	SearchEngineID string `json:"cx,omitempty" mapstructure:"cx"`

	// ExcludedSites lists domains dropped from results via -site: operators.
	ExcludedSites []string `json:"excluded_sites" mapstructure:"excluded_sites"`

	// IntextKeywords lists terms every result page must contain (intext: operators).
	IntextKeywords []string `json:"intext_keywords" mapstructure:"intext_keywords"`

	// TotalResults caps how many results are gathered across pages (default 50).
	TotalResults int `json:"total_results" mapstructure:"total_results"`

	// PageSize is the number of results requested per search page (default 10).
	PageSize int `json:"page_size" mapstructure:"page_size"`

	// PageDelay is the pause after each fetched search page (default 1s).
	PageDelay time.Duration `json:"page_delay" mapstructure:"page_delay"`
}
