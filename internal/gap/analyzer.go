// Package gap derives missing skills and learning recommendations for a role
// transition through a single generative call. Generative failures degrade to
// an empty analysis rather than failing the caller.
package gap

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/skill-advisor/internal/llm"
	"github.com/jonathan/skill-advisor/internal/parsing"
	"github.com/jonathan/skill-advisor/internal/prompts"
	"github.com/jonathan/skill-advisor/internal/types"
)

// Analyzer produces a GapAnalysis by prompting a generative model with the
// user's current role, target role, and skills.
type Analyzer struct {
	client  llm.Client
	verbose bool
}

// NewAnalyzer creates a gap analyzer. The client must not be nil.
func NewAnalyzer(client llm.Client) (*Analyzer, error) {
	if client == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	return &Analyzer{client: client}, nil
}

// SetVerbose enables progress logging.
func (a *Analyzer) SetVerbose(v bool) {
	a.verbose = v
}

// gapResponse is the model's expected JSON shape.
type gapResponse struct {
	MissingSkills   []string `json:"missingSkills"`
	Recommendations []string `json:"recommendations"`
}

// AnalyzeGap asks the model which skills the user is missing for the target
// role and how to close the gap. A blank target role is the only hard error;
// any model failure or malformed response yields an empty analysis instead.
func (a *Analyzer) AnalyzeGap(ctx context.Context, currentSkills []string, targetRole, currentRole string) (*types.GapAnalysis, error) {
	if strings.TrimSpace(targetRole) == "" {
		return nil, parsing.ErrMissingTargetRole
	}

	template := prompts.MustGet("gap.json", "analyze-skill-gap")
	prompt := prompts.Format(template, map[string]string{
		"CurrentRole":   currentRole,
		"TargetRole":    targetRole,
		"CurrentSkills": strings.Join(currentSkills, ", "),
	})

	if a.verbose {
		log.Printf("[GAP] Analyzing transition %q -> %q", currentRole, targetRole)
	}

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[GAP] Generation failed, returning empty analysis: %v", err)
		return types.EmptyGapAnalysis(), nil
	}

	var resp gapResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		log.Printf("[GAP] Malformed analysis response, returning empty analysis: %v", err)
		return types.EmptyGapAnalysis(), nil
	}

	analysis := &types.GapAnalysis{
		MissingSkills:   resp.MissingSkills,
		Recommendations: parsing.NormalizeRecommendations(strings.Join(resp.Recommendations, "\n")),
	}
	if analysis.MissingSkills == nil {
		analysis.MissingSkills = []string{}
	}

	return analysis, nil
}
