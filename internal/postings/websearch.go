package postings

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/jonathan/skill-advisor/internal/fetch"
)

// defaultMaxPostings caps how many posting pages one search retrieves.
const defaultMaxPostings = 8

// defaultFetchConcurrency bounds how many posting pages are fetched at once.
const defaultFetchConcurrency = 4

// browserTimeout bounds a single headless-browser render.
const browserTimeout = 30 * time.Second

// WebSearchOptions configures a WebSearchClient.
type WebSearchOptions struct {
	MaxPostings      int
	FetchConcurrency int
	UseBrowser       bool
	Verbose          bool
}

// WebSearchClient implements Client by discovering job posting pages through
// Google Custom Search and extracting their text content.
type WebSearchClient struct {
	svc  *customsearch.Service
	cx   string
	opts WebSearchOptions
}

// NewWebSearchClient creates a posting source backed by Google Custom Search.
func NewWebSearchClient(ctx context.Context, apiKey, cx string, opts WebSearchOptions) (*WebSearchClient, error) {
	if apiKey == "" || cx == "" {
		return nil, fmt.Errorf("search API key and CX are required")
	}

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}

	if opts.MaxPostings <= 0 {
		opts.MaxPostings = defaultMaxPostings
	}
	if opts.FetchConcurrency <= 0 {
		opts.FetchConcurrency = defaultFetchConcurrency
	}

	return &WebSearchClient{
		svc:  svc,
		cx:   cx,
		opts: opts,
	}, nil
}

// Search discovers posting pages for the query and returns their extracted
// title and text. Pages that fail to fetch are skipped, never failing the
// whole search; zero discovered postings is a valid empty result.
func (c *WebSearchClient) Search(ctx context.Context, query string, filters SearchFilters) ([]Posting, error) {
	q := fmt.Sprintf("%s job posting", query)
	if len(filters.Industries) > 0 {
		q = fmt.Sprintf("%s %s", q, strings.Join(filters.Industries, " "))
	}

	limit := c.opts.MaxPostings
	if filters.MaxResults > 0 && filters.MaxResults < limit {
		limit = filters.MaxResults
	}

	resp, err := c.svc.Cse.List().Cx(c.cx).Q(q).Num(int64(limit)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("posting search failed: %w", err)
	}

	if len(resp.Items) == 0 {
		return []Posting{}, nil
	}

	results := make([]*Posting, len(resp.Items))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.FetchConcurrency)

	for i, item := range resp.Items {
		i, item := i, item
		g.Go(func() error {
			posting, err := c.fetchPosting(gCtx, item.Link, item.Title)
			if err != nil {
				// Skip unreachable pages; the search degrades per page.
				if c.opts.Verbose {
					log.Printf("[POSTINGS] Skipping %s: %v", item.Link, err)
				}
				return nil
			}
			results[i] = posting
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	postings := make([]Posting, 0, len(results))
	for _, p := range results {
		if p != nil {
			postings = append(postings, *p)
		}
	}

	return postings, nil
}

// fetchPosting retrieves one posting page and extracts its title and text,
// falling back to headless browser rendering for SPA job boards.
func (c *WebSearchClient) fetchPosting(ctx context.Context, url, searchTitle string) (*Posting, error) {
	platform := fetch.DetectPlatform(url)

	result, err := fetch.URL(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	html := result.HTML
	text, err := fetch.ExtractMainText(html,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
	if err != nil {
		return nil, err
	}

	if c.opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		rendered, berr := fetch.WithBrowser(ctx, url, browserTimeout, c.opts.Verbose)
		if berr == nil {
			html = rendered
			text, err = fetch.ExtractMainText(html,
				fetch.PlatformContentSelectors(platform),
				fetch.PlatformNoiseSelectors(platform)...)
			if err != nil {
				return nil, err
			}
		}
	}

	title := searchTitle
	if title == "" {
		title = fetch.ExtractTitle(html)
	}

	return &Posting{
		Title:       title,
		Description: text,
		URL:         url,
	}, nil
}
