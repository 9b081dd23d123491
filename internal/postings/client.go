// Package postings provides the job-posting source port and the skill
// extraction that derives a frequency-ranked skill list from posting text.
package postings

import "context"

// Posting is one retrieved job posting.
type Posting struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// SearchFilters narrow a posting search. Empty filters broaden rather than
// narrow the search.
type SearchFilters struct {
	Industries []string
	MaxResults int
}

// Client is the port to an external job-posting source. Implementations may
// be slow or rate-limited; callers bound each call with a context deadline.
type Client interface {
	Search(ctx context.Context, query string, filters SearchFilters) ([]Posting, error)
}
