package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelated_ExactCaseInsensitive(t *testing.T) {
	assert.True(t, Related("Python", "python"))
	assert.True(t, Related("SQL", "sql"))
	assert.True(t, Related("System Design", "system design"))
}

func TestRelated_SubstringEitherDirection(t *testing.T) {
	assert.True(t, Related("python", "Python programming"))
	assert.True(t, Related("Python programming", "python"))
	assert.True(t, Related("java", "JavaScript"))
}

func TestRelated_SynonymGroups(t *testing.T) {
	cases := []struct {
		a, b string
	}{
		{"JavaScript", "Node.js"},
		{"TypeScript", "js"},
		{"MongoDB", "Postgres"},
		{"React", "Vue"},
		{"REST", "GraphQL"},
		{"Docker", "Kubernetes"},
		{"AWS", "CI/CD"},
		{"Jest", "Cypress"},
	}

	for _, tc := range cases {
		assert.True(t, Related(tc.a, tc.b), "%s should be related to %s", tc.a, tc.b)
	}
}

func TestRelated_UnrelatedSkills(t *testing.T) {
	assert.False(t, Related("Python", "JavaScript"))
	assert.False(t, Related("Leadership", "Kubernetes"))
	assert.False(t, Related("System Design", "Communication"))
}

func TestRelated_Reflexive(t *testing.T) {
	for _, skill := range []string{"Go", "python", "CI/CD", "Machine Learning", ""} {
		assert.True(t, Related(skill, skill), "Related(%q, %q) must hold", skill, skill)
	}
}

func TestRelated_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"JavaScript", "node"},
		{"python", "SQL"},
		{"react", "frontend"},
		{"", "Python"},
		{"Leadership", "Architecture"},
	}

	for _, p := range pairs {
		assert.Equal(t, Related(p[0], p[1]), Related(p[1], p[0]),
			"Related(%q, %q) must be symmetric", p[0], p[1])
	}
}

func TestRelated_EmptyString(t *testing.T) {
	// Empty is never related to a non-empty skill via substring containment
	assert.False(t, Related("", "Python"))
	assert.False(t, Related("Python", ""))
	assert.True(t, Related("", ""))
	assert.True(t, Related("  ", ""))
}

func TestVocabulary_ContainsCoreSkills(t *testing.T) {
	vocab := Vocabulary()
	assert.Contains(t, vocab, "system design")
	assert.Contains(t, vocab, "leadership")
	assert.Contains(t, vocab, "javascript")
	assert.Contains(t, vocab, "kubernetes")
}

func TestVocabulary_ReturnsCopy(t *testing.T) {
	vocab := Vocabulary()
	vocab[0] = "mutated"
	assert.NotEqual(t, "mutated", Vocabulary()[0])
}
