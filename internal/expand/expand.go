// Copyright Tzion0, 2026. All rights reserved.

// Package expand turns a threat-actor name into a list of known aliases by
// querying the Gemini generative-language API. Expansion never fails the
// run: any API problem collapses to a single-element list holding the
// original term.
package expand

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"text/template"

	"github.com/rs/zerolog"
)

// geminiAPIBase is the Gemini generateContent endpoint. Declared as a var so
// tests can substitute an httptest server.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// aliasPromptTmpl asks the model for comma-separated threat-actor aliases.
var aliasPromptTmpl = template.Must(template.New("alias").Parse(
	`Provide related APT or threat actor names for: {{.Term}}. Include alternative names and aliases, separated by commas.`))

// ErrMissingAPIKey reports that no Gemini API key was configured.
var ErrMissingAPIKey = errors.New("Gemini API key is missing")

// Expander queries the Gemini API for threat-actor aliases.
type Expander struct {
	APIKey string
	Client *http.Client
	Logger zerolog.Logger
}

// Expansion is the outcome of one expansion attempt. Terms is always usable:
// on any failure it holds only the original search term, Fallback is true
// and Reason records what went wrong.
type Expansion struct {
	Terms    []string
	Fallback bool
	Reason   error
}

// Expand returns alias terms for term. Failures (missing key, request error,
// unexpected response shape) are logged and collapse to the fallback list
// containing only term itself; they never propagate to the caller.
func (e *Expander) Expand(ctx context.Context, term string) Expansion {
	terms, err := e.expand(ctx, term)
	if err != nil {
		e.Logger.Error().Err(err).Str("term", term).Msg("keyword expansion failed, using the bare term")
		return Expansion{Terms: []string{term}, Fallback: true, Reason: err}
	}
	e.Logger.Info().Strs("keywords", terms).Msg("related keywords found")
	return Expansion{Terms: terms}
}

// expand performs the API round trip and keeps the failure reason typed so
// Expand can log it before collapsing to the fallback.
func (e *Expander) expand(ctx context.Context, term string) ([]string, error) {
	if e.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var prompt bytes.Buffer
	if err := aliasPromptTmpl.Execute(&prompt, struct{ Term string }{Term: term}); err != nil {
		return nil, fmt.Errorf("rendering prompt: %w", err)
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt.String()}}},
		},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	reqURL := geminiAPIBase + "?key=" + url.QueryEscape(e.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Gemini API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, string(body))
	}

	var gResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return nil, fmt.Errorf("parsing Gemini response: %w", err)
	}

	if len(gResp.Candidates) == 0 || len(gResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("Gemini response carries no candidate text")
	}

	return splitAliases(gResp.Candidates[0].Content.Parts[0].Text), nil
}

// splitAliases parses the model's comma-separated alias list, trimming
// whitespace and dropping empty fragments.
func splitAliases(text string) []string {
	parts := strings.Split(text, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// Gemini API wire types.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}
