package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-advisor/internal/config"
	"github.com/jonathan/skill-advisor/internal/pipeline"
	"github.com/jonathan/skill-advisor/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the full recommendation pipeline end-to-end",
	Long: `Orchestrates the entire recommendation process: gap derivation -> course candidates -> ranking.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRecommend,
}

var (
	recommendConfigPath  string
	recommendCurrentRole string
	recommendTargetRole  string
	recommendSkills      []string
	recommendIndustries  []string
	recommendStrategy    string
	recommendCatalog     string
	recommendMaxCourses  int
	recommendMaxPostings int
	recommendOutput      string
	recommendAPIKey      string
	recommendUseBrowser  bool
	recommendVerbose     bool
)

func init() {
	// Config file flag (processed first)
	recommendCmd.Flags().StringVar(&recommendConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	recommendCmd.Flags().StringVarP(&recommendCurrentRole, "current-role", "c", "", "Current role title")
	recommendCmd.Flags().StringVarP(&recommendTargetRole, "target-role", "t", "", "Target role title")
	recommendCmd.Flags().StringSliceVarP(&recommendSkills, "skills", "s", nil, "Current skills (comma-separated)")
	recommendCmd.Flags().StringSliceVarP(&recommendIndustries, "industries", "i", nil, "Preferred industries (comma-separated)")
	recommendCmd.Flags().StringVar(&recommendStrategy, "strategy", "", "Gap derivation strategy: generative or postings (default generative)")
	recommendCmd.Flags().StringVar(&recommendCatalog, "catalog", "", "Path to a static course catalog JSON file (uses generative candidates if omitted)")
	recommendCmd.Flags().IntVar(&recommendMaxCourses, "max-courses", 0, "Maximum courses to recommend")
	recommendCmd.Flags().IntVar(&recommendMaxPostings, "max-postings", 0, "Maximum job postings to analyze")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output result JSON file (prints to stdout if omitted)")
	recommendCmd.Flags().BoolVar(&recommendUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	recommendCmd.Flags().StringVar(&recommendAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if recommendConfigPath != "" {
		loadedCfg, err := config.LoadConfig(recommendConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if recommendVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", recommendConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("current-role") {
		cfg.CurrentRole = recommendCurrentRole
	}
	if cmd.Flags().Changed("target-role") {
		cfg.TargetRole = recommendTargetRole
	}
	if cmd.Flags().Changed("skills") {
		cfg.Skills = recommendSkills
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = recommendCatalog
	}
	if cmd.Flags().Changed("max-courses") {
		cfg.MaxCourses = recommendMaxCourses
	}
	if cmd.Flags().Changed("max-postings") {
		cfg.MaxPostings = recommendMaxPostings
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = recommendAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = recommendUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = recommendVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		MaxCourses:  10,
		MaxPostings: 8,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.TargetRole == "" {
		return fmt.Errorf("--target-role is required (via flag or config)")
	}

	// Step 5: API key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	// Step 6: Search credentials (only needed for the postings strategy)
	if cfg.SearchAPIKey == "" {
		cfg.SearchAPIKey = os.Getenv("GOOGLE_SEARCH_API_KEY")
	}
	if cfg.SearchCX == "" {
		cfg.SearchCX = os.Getenv("GOOGLE_SEARCH_CX")
	}

	user := &types.User{
		CurrentRole: cfg.CurrentRole,
		TargetRole:  cfg.TargetRole,
		Skills:      cfg.Skills,
		Preferences: types.Preferences{
			PreferredIndustries: recommendIndustries,
		},
	}

	opts := pipeline.RunOptions{
		User:         user,
		Strategy:     pipeline.Strategy(recommendStrategy),
		CatalogPath:  cfg.Catalog,
		MaxCourses:   cfg.MaxCourses,
		MaxPostings:  cfg.MaxPostings,
		APIKey:       cfg.APIKey,
		SearchAPIKey: cfg.SearchAPIKey,
		SearchCX:     cfg.SearchCX,
		UseBrowser:   cfg.UseBrowser,
		Verbose:      cfg.Verbose,
	}

	result, err := pipeline.RunPipeline(ctx, opts)
	if err != nil {
		return err
	}

	return writeJSONOutput(result, recommendOutput,
		fmt.Sprintf("Recommended %d courses", len(result.Courses)))
}
