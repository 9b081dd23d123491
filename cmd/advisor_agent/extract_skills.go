package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-advisor/internal/observability"
	"github.com/jonathan/skill-advisor/internal/postings"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Extract in-demand skills from live job postings",
	Long:  "Searches job postings for the target role, scans them against the technical skill vocabulary, and produces merged skill frequencies sorted by demand.",
	RunE:  runExtractSkills,
}

var (
	extractSkillsTargetRole  string
	extractSkillsIndustries  []string
	extractSkillsMaxPostings int
	extractSkillsOutput      string
	extractSkillsUseBrowser  bool
	extractSkillsVerbose     bool
)

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractSkillsTargetRole, "target-role", "t", "", "Target role title (required)")
	extractSkillsCmd.Flags().StringSliceVarP(&extractSkillsIndustries, "industries", "i", nil, "Industries to narrow the posting search (comma-separated)")
	extractSkillsCmd.Flags().IntVar(&extractSkillsMaxPostings, "max-postings", 0, "Maximum job postings to analyze")
	extractSkillsCmd.Flags().StringVarP(&extractSkillsOutput, "out", "o", "", "Path to output skill frequencies JSON file (prints to stdout if omitted)")
	extractSkillsCmd.Flags().BoolVar(&extractSkillsUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	extractSkillsCmd.Flags().BoolVarP(&extractSkillsVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := extractSkillsCmd.MarkFlagRequired("target-role"); err != nil {
		panic(fmt.Sprintf("failed to mark target-role flag as required: %v", err))
	}

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	searchKey := os.Getenv("GOOGLE_SEARCH_API_KEY")
	searchCX := os.Getenv("GOOGLE_SEARCH_CX")
	if searchKey == "" || searchCX == "" {
		return fmt.Errorf("GOOGLE_SEARCH_API_KEY and GOOGLE_SEARCH_CX environment variables are required")
	}

	search, err := postings.NewWebSearchClient(ctx, searchKey, searchCX, postings.WebSearchOptions{
		MaxPostings: extractSkillsMaxPostings,
		UseBrowser:  extractSkillsUseBrowser,
		Verbose:     extractSkillsVerbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create posting source: %w", err)
	}

	extractor := postings.NewExtractor(search)
	frequencies, err := extractor.Extract(ctx, extractSkillsTargetRole, extractSkillsIndustries)
	if err != nil {
		return fmt.Errorf("skill extraction failed: %w", err)
	}

	if extractSkillsVerbose {
		observability.NewPrinter(os.Stdout).PrintSkillFrequencies(frequencies)
	}

	return writeJSONOutput(frequencies, extractSkillsOutput,
		fmt.Sprintf("Extracted %d in-demand skills", len(frequencies)))
}
