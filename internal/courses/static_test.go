package courses

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-advisor/internal/types"
)

func TestStaticCandidates_FullCatalogWithoutGap(t *testing.T) {
	source := NewStaticSource()

	candidates, err := source.Candidates(context.Background(), CandidateRequest{TargetRole: "Platform Engineer"})
	require.NoError(t, err)
	assert.NotEmpty(t, candidates)

	for _, course := range candidates {
		assert.NotEmpty(t, course.ID)
		assert.Contains(t, []string{
			types.DifficultyBeginner,
			types.DifficultyIntermediate,
			types.DifficultyAdvanced,
		}, course.Difficulty)
		assert.Nil(t, course.AIMatchScore)
	}
}

func TestStaticCandidates_FiltersToRelatedSkills(t *testing.T) {
	source := NewStaticSource()

	candidates, err := source.Candidates(context.Background(), CandidateRequest{
		TargetRole:    "Platform Engineer",
		MissingSkills: []string{"Kubernetes"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	titles := make([]string, 0, len(candidates))
	for _, course := range candidates {
		titles = append(titles, course.Title)
	}
	assert.Contains(t, titles, "Kubernetes for Developers")
	assert.NotContains(t, titles, "Engineering Leadership Fundamentals")
}

func TestStaticCandidates_SynonymGroupReachesCatalog(t *testing.T) {
	source := NewStaticSource()

	// "CI/CD" and "Kubernetes" share the devops synonym group.
	candidates, err := source.Candidates(context.Background(), CandidateRequest{
		TargetRole:    "Platform Engineer",
		MissingSkills: []string{"CI/CD"},
	})
	require.NoError(t, err)

	titles := make([]string, 0, len(candidates))
	for _, course := range candidates {
		titles = append(titles, course.Title)
	}
	assert.Contains(t, titles, "Kubernetes for Developers")
}

func TestNewStaticSourceFromFile(t *testing.T) {
	catalog := []types.Course{
		{
			Title:       "Terraform Essentials",
			Description: "Provision infrastructure as code.",
			Platform:    "Pluralsight",
			Difficulty:  types.DifficultyBeginner,
			Duration:    "6 hours",
			Skills:      []string{"Terraform", "DevOps"},
			URL:         "https://www.pluralsight.com/courses/terraform-getting-started",
		},
	}
	data, err := json.Marshal(catalog)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	source, err := NewStaticSourceFromFile(path)
	require.NoError(t, err)

	candidates, err := source.Candidates(context.Background(), CandidateRequest{TargetRole: "Platform Engineer"})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Terraform Essentials", candidates[0].Title)
	assert.NotEmpty(t, candidates[0].ID, "entries without an ID get one assigned")
}

func TestNewStaticSourceFromFile_Errors(t *testing.T) {
	_, err := NewStaticSourceFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = NewStaticSourceFromFile(path)
	require.Error(t, err)
}
