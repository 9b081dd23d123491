package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecommendations_StripsOrdinalMarkers(t *testing.T) {
	raw := "1. Learn system design fundamentals\n2. Build a portfolio project\n3. Practice mock interviews"

	result := NormalizeRecommendations(raw)

	require.Len(t, result, 3)
	assert.Equal(t, "Learn system design fundamentals", result[0])
	assert.Equal(t, "Build a portfolio project", result[1])
	assert.Equal(t, "Practice mock interviews", result[2])
}

func TestNormalizeRecommendations_DiscardsBlankLines(t *testing.T) {
	raw := "First recommendation\n\n   \n\nSecond recommendation"

	result := NormalizeRecommendations(raw)

	require.Len(t, result, 2)
	assert.Equal(t, "First recommendation", result[0])
	assert.Equal(t, "Second recommendation", result[1])
}

func TestNormalizeRecommendations_DiscardsLinesEmptyAfterStripping(t *testing.T) {
	raw := "1. Real recommendation\n2.\n3.   "

	result := NormalizeRecommendations(raw)

	require.Len(t, result, 1)
	assert.Equal(t, "Real recommendation", result[0])
}

func TestNormalizeRecommendations_PreservesOrder(t *testing.T) {
	raw := "10. Tenth item first\n1. First item second"

	result := NormalizeRecommendations(raw)

	require.Len(t, result, 2)
	assert.Equal(t, "Tenth item first", result[0])
	assert.Equal(t, "First item second", result[1])
}

func TestNormalizeRecommendations_OnlyStripsLeadingMarkers(t *testing.T) {
	raw := "Deploy version 2. of the service"

	result := NormalizeRecommendations(raw)

	require.Len(t, result, 1)
	assert.Equal(t, "Deploy version 2. of the service", result[0])
}

func TestNormalizeRecommendations_EmptyInput(t *testing.T) {
	assert.Empty(t, NormalizeRecommendations(""))
	assert.Empty(t, NormalizeRecommendations("\n\n\n"))
}

func TestNormalizeRecommendations_Idempotent(t *testing.T) {
	inputs := []string{
		"1. First\n2. Second\n3. Third",
		"No markers here\nJust lines",
		"1. Mixed\nplain line\n\n2. another",
	}

	for _, raw := range inputs {
		once := NormalizeRecommendations(raw)
		twice := NormalizeRecommendations(strings.Join(once, "\n"))
		assert.Equal(t, once, twice, "re-normalizing %q should be stable", raw)
	}
}
