// Copyright Tzion0, 2026. All rights reserved.

// Package dork assembles Google dorking query strings from expansion terms,
// site exclusions and required in-text keywords.
package dork

import (
	"fmt"
	"strings"
)

// Build composes the three term groups into a single dorking query:
//
//	("APT28" OR "Fancy Bear") -site:twitter.com intext:malware
//
// Expansion terms are individually quoted and OR-joined, exclusion sites are
// prefixed -site:, required keywords are prefixed intext:. An empty group
// contributes an empty segment, leaving consecutive spaces in the output;
// the search API tolerates this, so it is kept as-is.
func Build(terms, excludedSites, intextKeywords []string) string {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = `"` + t + `"`
	}

	exclusions := make([]string, len(excludedSites))
	for i, site := range excludedSites {
		exclusions[i] = "-site:" + site
	}

	intext := make([]string, len(intextKeywords))
	for i, kw := range intextKeywords {
		intext[i] = "intext:" + kw
	}

	return fmt.Sprintf("(%s) %s %s",
		strings.Join(quoted, " OR "),
		strings.Join(exclusions, " "),
		strings.Join(intext, " "))
}
