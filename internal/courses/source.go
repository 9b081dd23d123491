// Package courses provides candidate course sources: a fixed curated catalog
// and a generative source that invents candidates for the user's skill gap.
package courses

import (
	"context"

	"github.com/jonathan/skill-advisor/internal/types"
)

// CandidateRequest describes the gap a candidate source should cover.
type CandidateRequest struct {
	TargetRole    string
	CurrentSkills []string
	MissingSkills []string
	Preferences   types.Preferences
}

// Source supplies course candidates for a skill gap. Implementations are
// interchangeable; the pipeline selects one per run and never composes them.
type Source interface {
	Candidates(ctx context.Context, req CandidateRequest) ([]types.Course, error)
}
