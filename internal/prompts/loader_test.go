package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	ClearCache()

	cases := []struct {
		filename string
		key      string
	}{
		{"gap.json", "analyze-skill-gap"},
		{"courses.json", "generate-courses"},
		{"ranking.json", "score-courses"},
	}

	for _, tc := range cases {
		prompt, err := Get(tc.filename, tc.key)
		require.NoError(t, err, "prompt %s/%s should load", tc.filename, tc.key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	ClearCache()

	_, err := Get("gap.json", "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGet_UnknownFile(t *testing.T) {
	ClearCache()

	_, err := Get("missing.json", "any-key")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("gap.json", "nonexistent-key")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	template := "Target role: {{.TargetRole}}, skills: {{.Skills}}"
	result := Format(template, map[string]string{
		"TargetRole": "Data Engineer",
		"Skills":     "Python, SQL",
	})

	assert.Equal(t, "Target role: Data Engineer, skills: Python, SQL", result)
	assert.False(t, strings.Contains(result, "{{"))
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	template := "Hello {{.Name}}"
	result := Format(template, map[string]string{"Other": "value"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestList_ReturnsKeys(t *testing.T) {
	ClearCache()

	keys, err := List("gap.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "analyze-skill-gap")
}

func TestGapPrompt_RequestsStrictJSON(t *testing.T) {
	ClearCache()

	prompt := MustGet("gap.json", "analyze-skill-gap")
	assert.Contains(t, prompt, "missingSkills")
	assert.Contains(t, prompt, "recommendations")
	assert.Contains(t, prompt, "{{.TargetRole}}")
}
