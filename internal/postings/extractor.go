package postings

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/skill-advisor/internal/parsing"
	"github.com/jonathan/skill-advisor/internal/skills"
	"github.com/jonathan/skill-advisor/internal/types"
)

// Extractor derives a frequency-ranked skill list for a role transition from
// job postings. It is one of two interchangeable gap-derivation strategies;
// the other is the generative analyzer.
type Extractor struct {
	client Client
}

// NewExtractor creates an Extractor over a posting source.
func NewExtractor(client Client) *Extractor {
	return &Extractor{client: client}
}

// Extract searches postings for the target role, scans title and description
// text against the fixed technical-skill vocabulary, and returns merged skill
// frequencies sorted descending. A blank target role is a hard input error;
// a posting source returning zero postings yields an empty list, not an error.
func (e *Extractor) Extract(ctx context.Context, targetRole string, industries []string) ([]types.SkillFrequency, error) {
	if strings.TrimSpace(targetRole) == "" {
		return nil, &parsing.InvalidInputError{Field: "targetRole", Message: "target role must not be blank"}
	}

	found, err := e.client.Search(ctx, targetRole, SearchFilters{Industries: industries})
	if err != nil {
		return nil, fmt.Errorf("posting retrieval failed: %w", err)
	}

	if len(found) == 0 {
		return []types.SkillFrequency{}, nil
	}

	return Normalize(countKeywordHits(found)), nil
}

// countKeywordHits scans each posting against the vocabulary and returns raw
// per-keyword hit counts in first-seen order. A posting contributes one hit
// per keyword it mentions.
func countKeywordHits(found []Posting) []types.SkillFrequency {
	vocabulary := skills.Vocabulary()

	hits := make([]types.SkillFrequency, 0)
	index := make(map[string]int)

	for _, posting := range found {
		text := strings.ToLower(posting.Title + " " + posting.Description)
		for _, keyword := range vocabulary {
			if !strings.Contains(text, keyword) {
				continue
			}
			if i, seen := index[keyword]; seen {
				hits[i].Frequency++
			} else {
				index[keyword] = len(hits)
				hits = append(hits, types.SkillFrequency{Name: keyword, Frequency: 1})
			}
		}
	}

	return hits
}

// Normalize merges frequencies for related spellings of the same skill into a
// single entry, keeping a title-cased canonical name from the first occurrence
// of each group, and sorts descending by frequency with stable ties.
func Normalize(raw []types.SkillFrequency) []types.SkillFrequency {
	merged := make([]types.SkillFrequency, 0, len(raw))

	for _, hit := range raw {
		matched := false
		for i := range merged {
			if skills.Related(merged[i].Name, hit.Name) {
				merged[i].Frequency += hit.Frequency
				matched = true
				break
			}
		}
		if !matched {
			merged = append(merged, types.SkillFrequency{
				Name:      titleCase(hit.Name),
				Frequency: hit.Frequency,
			})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Frequency > merged[j].Frequency
	})

	return merged
}

// titleCase capitalizes the first letter of each word, leaving the rest of
// each word untouched so acronyms like SQL survive.
func titleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
