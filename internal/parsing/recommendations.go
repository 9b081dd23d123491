// Package parsing provides input validation errors and text normalization
// for free-form generative output.
package parsing

import (
	"regexp"
	"strings"
)

// ordinalPrefix matches a leading list marker like "1. " or "12."
var ordinalPrefix = regexp.MustCompile(`^\d+\.\s*`)

// NormalizeRecommendations parses free-form action-advice text into a clean
// ordered list of discrete recommendation strings. Blank lines and lines that
// become empty after stripping their ordinal marker are discarded; remaining
// line order is preserved. The operation is idempotent: normalizing an
// already-normalized list joined by newlines yields the same list.
func NormalizeRecommendations(raw string) []string {
	lines := strings.Split(raw, "\n")

	normalized := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		line = ordinalPrefix.ReplaceAllString(line, "")
		if line == "" {
			continue
		}

		normalized = append(normalized, line)
	}

	return normalized
}
