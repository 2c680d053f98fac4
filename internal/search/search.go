// Copyright Tzion0, 2026. All rights reserved.

// Package search pages through the Google Custom Search JSON API, gathering
// dorking-query results across start offsets up to a configured total.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tzion0/ThreatScrape/pkg/types"
)

// customSearchBase is the Custom Search endpoint. Declared as a var so tests
// can substitute an httptest server.
var customSearchBase = "https://www.googleapis.com/customsearch/v1"

// Client drives the Custom Search API for one run.
type Client struct {
	APIKey   string
	EngineID string

	// PageSize is the number of results requested per page (default 10).
	PageSize int

	// PageDelay is the pause after each fetched page, respecting the API's
	// pacing limits. Zero disables the pause.
	PageDelay time.Duration

	HTTP   *http.Client
	Logger zerolog.Logger
}

// searchResponse is the slice of the Custom Search response the client reads.
// Items keep every upstream field.
type searchResponse struct {
	Items []types.Item `json:"items"`
}

// Search gathers up to totalResults items for query, paging through start
// offsets 1, 1+n, 1+2n, ... while the offset stays within totalResults.
// It never returns an error: missing credentials yield an empty set without
// issuing a request, a page without items is logged and skipped, and a
// request failure stops pagination and returns whatever was gathered.
func (c *Client) Search(ctx context.Context, query string, totalResults int) []types.Item {
	if c.APIKey == "" || c.EngineID == "" {
		c.Logger.Error().Msg("Google API key or search engine id missing, skipping search")
		return nil
	}

	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	var results []types.Item
	for start := 1; start <= totalResults; start += pageSize {
		c.Logger.Info().
			Int("from", start).
			Int("to", start+pageSize-1).
			Msg("fetching results")

		items, err := c.fetchPage(ctx, query, pageSize, start)
		if err != nil {
			c.Logger.Error().Err(err).Int("start", start).Msg("request failed, keeping partial results")
			break
		}
		if len(items) == 0 {
			c.Logger.Warn().Int("start", start).Msg("no results found in this batch")
		}
		results = append(results, items...)

		if c.PageDelay > 0 {
			time.Sleep(c.PageDelay)
		}
	}

	return results
}

// fetchPage issues one Custom Search request at the given start offset.
func (c *Client) fetchPage(ctx context.Context, query string, pageSize, start int) ([]types.Item, error) {
	params := url.Values{
		"key":   {c.APIKey},
		"cx":    {c.EngineID},
		"q":     {query},
		"num":   {strconv.Itoa(pageSize)},
		"start": {strconv.Itoa(start)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, customSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Custom Search API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Custom Search API returned HTTP %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing Custom Search response: %w", err)
	}

	return sr.Items, nil
}
