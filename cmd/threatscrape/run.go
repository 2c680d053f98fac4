package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tzion0/ThreatScrape/internal/config"
	"github.com/Tzion0/ThreatScrape/internal/dork"
	"github.com/Tzion0/ThreatScrape/internal/expand"
	"github.com/Tzion0/ThreatScrape/internal/report"
	"github.com/Tzion0/ThreatScrape/internal/search"
	"github.com/Tzion0/ThreatScrape/internal/secrets"
)

// newLogger builds the process logger. All diagnostics go to stderr so that
// piping stdout yields only the result listing.
func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// run executes the pipeline for one keyword: load config, expand the keyword
// into aliases, build the dorking query, page through the search API, and
// write the results. An error return makes the process exit 1.
func run(keyword, cfgPath, savePath string) error {
	logger := newLogger()

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return fmt.Errorf("search keyword cannot be empty")
	}

	cfgPath = strings.TrimSpace(cfgPath)
	logger.Info().Str("config", cfgPath).Msg("using configuration")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	creds, err := secrets.Load(secretsDir, logger)
	if err != nil {
		return err
	}
	secrets.Apply(&cfg, creds)

	httpClient := &http.Client{Timeout: cfg.Timeout}
	ctx := context.Background()

	logger.Info().Str("keyword", keyword).Msg("starting search")

	expander := &expand.Expander{
		APIKey: cfg.GeminiAPIKey,
		Client: httpClient,
		Logger: logger,
	}
	expansion := expander.Expand(ctx, keyword)

	query := dork.Build(expansion.Terms, cfg.ExcludedSites, cfg.IntextKeywords)
	logger.Info().Str("query", query).Msg("generated dorking query")

	searcher := &search.Client{
		APIKey:    cfg.GoogleAPIKey,
		EngineID:  cfg.SearchEngineID,
		PageSize:  cfg.PageSize,
		PageDelay: cfg.PageDelay,
		HTTP:      httpClient,
		Logger:    logger,
	}
	results := searcher.Search(ctx, query, cfg.TotalResults)

	if len(results) == 0 {
		logger.Info().Msg("no results found")
		fmt.Println("No results found.")
		return nil
	}

	logger.Info().Int("total", len(results)).Msg("results retrieved")

	jsonPath, csvPath := report.Filenames(keyword)
	if err := report.WriteJSON(jsonPath, results); err != nil {
		return err
	}
	logger.Info().Str("file", jsonPath).Msg("results saved")

	if err := report.WriteCSV(csvPath, results); err != nil {
		return err
	}
	logger.Info().Str("file", csvPath).Msg("results saved")

	if savePath != "" {
		if err := report.WriteHuntFile(savePath, keyword, query, expansion, results); err != nil {
			return err
		}
		logger.Info().Str("file", savePath).Msg("hunt file saved")
	}

	report.Print(os.Stdout, results)
	return nil
}
