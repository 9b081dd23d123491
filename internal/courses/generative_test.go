package courses

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-advisor/internal/llm"
	"github.com/jonathan/skill-advisor/internal/parsing"
)

type stubLLM struct {
	response string
	err      error
	calls    int
	prompt   string
}

func (s *stubLLM) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.calls++
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubLLM) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	s.calls++
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubLLM) GetModel(llm.ModelTier) string { return "stub-model" }

func (s *stubLLM) Close() error { return nil }

const validCourseJSON = `{
	"courses": [
		{
			"title": "Kubernetes Deep Dive",
			"description": "Operate production clusters.",
			"platform": "Udemy",
			"difficulty": "Intermediate",
			"duration": "20 hours",
			"skills": ["Kubernetes", "Docker"],
			"url": "https://www.udemy.com/course/kubernetes-deep-dive/",
			"price": "$19.99",
			"rating": 4.6
		}
	]
}`

func TestGenerativeCandidates_MissingTargetRole(t *testing.T) {
	client := &stubLLM{response: validCourseJSON}
	source, err := NewGenerativeSource(client)
	require.NoError(t, err)

	_, err = source.Candidates(context.Background(), CandidateRequest{
		MissingSkills: []string{"Kubernetes"},
	})
	require.Error(t, err)
	assert.True(t, parsing.IsInvalidInput(err))
	assert.Zero(t, client.calls, "target role is validated before any model call")
}

func TestGenerativeCandidates_NoMissingSkillsShortCircuits(t *testing.T) {
	client := &stubLLM{response: validCourseJSON}
	source, err := NewGenerativeSource(client)
	require.NoError(t, err)

	candidates, err := source.Candidates(context.Background(), CandidateRequest{
		TargetRole: "Platform Engineer",
	})
	require.NoError(t, err)
	assert.Empty(t, candidates)
	assert.Zero(t, client.calls, "nothing to cover means no model call")
}

func TestGenerativeCandidates_ParsesAndAssignsIDs(t *testing.T) {
	client := &stubLLM{response: validCourseJSON}
	source, err := NewGenerativeSource(client)
	require.NoError(t, err)

	candidates, err := source.Candidates(context.Background(), CandidateRequest{
		TargetRole:    "Platform Engineer",
		CurrentSkills: []string{"Go"},
		MissingSkills: []string{"Kubernetes"},
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, "Kubernetes Deep Dive", candidates[0].Title)
	assert.NotEmpty(t, candidates[0].ID, "generated candidates get an identity")
	assert.Nil(t, candidates[0].AIMatchScore, "sources never attach scores")

	assert.Contains(t, client.prompt, "Platform Engineer")
	assert.Contains(t, client.prompt, "Kubernetes")
}

func TestGenerativeCandidates_ModelFailureDegradesToEmpty(t *testing.T) {
	client := &stubLLM{err: errors.New("quota exceeded")}
	source, err := NewGenerativeSource(client)
	require.NoError(t, err)

	candidates, err := source.Candidates(context.Background(), CandidateRequest{
		TargetRole:    "Platform Engineer",
		MissingSkills: []string{"Kubernetes"},
	})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGenerativeCandidates_SchemaViolationDegradesToEmpty(t *testing.T) {
	client := &stubLLM{response: `{"courses": [{"title": "No required fields", "difficulty": "Expert"}]}`}
	source, err := NewGenerativeSource(client)
	require.NoError(t, err)

	candidates, err := source.Candidates(context.Background(), CandidateRequest{
		TargetRole:    "Platform Engineer",
		MissingSkills: []string{"Kubernetes"},
	})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGenerativeCandidates_NonJSONDegradesToEmpty(t *testing.T) {
	client := &stubLLM{response: "I can't produce courses right now."}
	source, err := NewGenerativeSource(client)
	require.NoError(t, err)

	candidates, err := source.Candidates(context.Background(), CandidateRequest{
		TargetRole:    "Platform Engineer",
		MissingSkills: []string{"Kubernetes"},
	})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestNewGenerativeSource_RequiresClient(t *testing.T) {
	_, err := NewGenerativeSource(nil)
	require.Error(t, err)
}
