// Package pipeline provides the high-level orchestration for the course recommendation process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/skill-advisor/internal/courses"
	"github.com/jonathan/skill-advisor/internal/gap"
	"github.com/jonathan/skill-advisor/internal/llm"
	"github.com/jonathan/skill-advisor/internal/observability"
	"github.com/jonathan/skill-advisor/internal/parsing"
	"github.com/jonathan/skill-advisor/internal/postings"
	"github.com/jonathan/skill-advisor/internal/ranking"
	"github.com/jonathan/skill-advisor/internal/skills"
	"github.com/jonathan/skill-advisor/internal/types"
)

// Strategy selects how missing skills are derived. The two strategies are
// interchangeable and never composed in one run.
type Strategy string

const (
	// StrategyGenerative derives the gap through a generative analysis call.
	StrategyGenerative Strategy = "generative"
	// StrategyPostings derives the gap from skill demand in live job postings.
	StrategyPostings Strategy = "postings"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Pipeline step names reported through progress events.
const (
	StepGapAnalysis   = "gap_analysis"
	StepSkillDemand   = "skill_demand"
	StepCandidates    = "course_candidates"
	StepRankedCourses = "ranked_courses"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	User         *types.User `validate:"required"`
	Strategy     Strategy    `validate:"omitempty,oneof=generative postings"`
	CatalogPath  string
	MaxCourses   int
	MaxPostings  int
	APIKey       string
	SearchAPIKey string
	SearchCX     string
	UseBrowser   bool
	Verbose      bool
	OnProgress   ProgressCallback
}

// Result holds everything one pipeline run produced.
type Result struct {
	RunID            string                 `json:"runId"`
	GapAnalysis      *types.GapAnalysis     `json:"gapAnalysis,omitempty"`
	SkillFrequencies []types.SkillFrequency `json:"skillFrequencies,omitempty"`
	MissingSkills    []string               `json:"missingSkills"`
	Courses          []types.Course         `json:"courses"`
}

// deps are the pipeline's collaborators, injected so orchestration logic is
// testable without live services.
type deps struct {
	analyzer  *gap.Analyzer
	extractor *postings.Extractor
	source    courses.Source
	ranker    *ranking.Ranker
	printer   *observability.Printer
}

// validate checks option shape before any external call is made.
var validate = validator.New()

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
			Content: content,
		})
	}
}

// RunPipeline orchestrates the full recommendation pipeline: derive missing
// skills through the selected strategy, gather course candidates, and rank
// them for the user.
func RunPipeline(ctx context.Context, opts RunOptions) (*Result, error) {
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}
	defer client.Close()

	d := deps{printer: observability.NewPrinter(os.Stdout)}

	d.analyzer, err = gap.NewAnalyzer(client)
	if err != nil {
		return nil, err
	}
	d.analyzer.SetVerbose(opts.Verbose)

	if opts.Strategy == StrategyPostings {
		search, err := postings.NewWebSearchClient(ctx, opts.SearchAPIKey, opts.SearchCX, postings.WebSearchOptions{
			MaxPostings: opts.MaxPostings,
			UseBrowser:  opts.UseBrowser,
			Verbose:     opts.Verbose,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create posting source: %w", err)
		}
		d.extractor = postings.NewExtractor(search)
	}

	if opts.CatalogPath != "" {
		d.source, err = courses.NewStaticSourceFromFile(opts.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load course catalog: %w", err)
		}
	} else {
		generative, err := courses.NewGenerativeSource(client)
		if err != nil {
			return nil, err
		}
		generative.SetVerbose(opts.Verbose)
		d.source = generative
	}

	d.ranker, err = ranking.NewRanker(client)
	if err != nil {
		return nil, err
	}
	d.ranker.SetVerbose(opts.Verbose)

	return run(ctx, opts, d)
}

// run executes the pipeline against already-constructed collaborators.
func run(ctx context.Context, opts RunOptions, d deps) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	user := opts.User

	// Step 1: derive missing skills through the selected strategy
	switch opts.Strategy {
	case StrategyPostings:
		fmt.Printf("Step 1/3: Extracting skill demand from job postings for %q...\n", user.TargetRole)
		frequencies, err := d.extractor.Extract(ctx, user.TargetRole, user.Preferences.PreferredIndustries)
		if err != nil {
			return nil, fmt.Errorf("skill extraction failed: %w", err)
		}
		result.SkillFrequencies = frequencies
		result.MissingSkills = missingFromDemand(frequencies, user.Skills)
		if opts.Verbose {
			d.printer.PrintSkillFrequencies(frequencies)
		}
		emitProgress(&opts, result.RunID, StepSkillDemand,
			fmt.Sprintf("Extracted %d in-demand skills from postings", len(frequencies)), frequencies)

	default:
		fmt.Printf("Step 1/3: Analyzing skill gap for %q -> %q...\n", user.CurrentRole, user.TargetRole)
		analysis, err := d.analyzer.AnalyzeGap(ctx, user.Skills, user.TargetRole, user.CurrentRole)
		if err != nil {
			return nil, fmt.Errorf("gap analysis failed: %w", err)
		}
		result.GapAnalysis = analysis
		result.MissingSkills = analysis.MissingSkills
		if opts.Verbose {
			d.printer.PrintGapAnalysis(analysis)
		}
		emitProgress(&opts, result.RunID, StepGapAnalysis,
			fmt.Sprintf("Identified %d missing skills", len(analysis.MissingSkills)), analysis)
	}

	// Step 2: gather course candidates covering the gap
	fmt.Printf("Step 2/3: Gathering course candidates for %d missing skills...\n", len(result.MissingSkills))
	candidates, err := d.source.Candidates(ctx, courses.CandidateRequest{
		TargetRole:    user.TargetRole,
		CurrentSkills: user.Skills,
		MissingSkills: result.MissingSkills,
		Preferences:   user.Preferences,
	})
	if err != nil {
		return nil, fmt.Errorf("course candidate lookup failed: %w", err)
	}
	emitProgress(&opts, result.RunID, StepCandidates,
		fmt.Sprintf("Gathered %d course candidates", len(candidates)), nil)

	// Step 3: rank candidates for the user
	fmt.Printf("Step 3/3: Ranking %d candidates...\n", len(candidates))
	ranked := d.ranker.Rank(ctx, candidates, types.ContextFor(user, result.MissingSkills))
	if opts.MaxCourses > 0 && len(ranked) > opts.MaxCourses {
		ranked = ranked[:opts.MaxCourses]
	}
	result.Courses = ranked
	if opts.Verbose {
		d.printer.PrintRankedCourses(ranked)
	}
	emitProgress(&opts, result.RunID, StepRankedCourses,
		fmt.Sprintf("Recommended %d courses", len(ranked)), ranked)

	return result, nil
}

// validateOptions rejects malformed options before any collaborator is built.
func validateOptions(opts *RunOptions) error {
	if err := validate.Struct(opts); err != nil {
		return &parsing.InvalidInputError{Field: "options", Message: err.Error()}
	}
	if strings.TrimSpace(opts.User.TargetRole) == "" {
		return parsing.ErrMissingTargetRole
	}
	if opts.Strategy == "" {
		opts.Strategy = StrategyGenerative
	}
	if opts.Strategy == StrategyPostings && (opts.SearchAPIKey == "" || opts.SearchCX == "") {
		return &parsing.InvalidInputError{
			Field:   "search",
			Message: "posting strategy requires a search API key and engine ID",
		}
	}
	return nil
}

// missingFromDemand filters in-demand skills down to the ones the user does
// not already have. Possession is judged by relatedness, not equality, so
// "JS" covers demand for "JavaScript".
func missingFromDemand(frequencies []types.SkillFrequency, currentSkills []string) []string {
	missing := make([]string, 0, len(frequencies))
	for _, f := range frequencies {
		if !hasRelatedSkill(currentSkills, f.Name) {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// hasRelatedSkill reports whether any current skill is related to the demanded one.
func hasRelatedSkill(currentSkills []string, demanded string) bool {
	for _, have := range currentSkills {
		if skills.Related(have, demanded) {
			return true
		}
	}
	return false
}
