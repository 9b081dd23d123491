package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_PlainJSON(t *testing.T) {
	input := `{"missingSkills": ["System Design"]}`
	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"courses\": []}\n```"
	assert.Equal(t, `{"courses": []}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n[85, 40, 10]\n```"
	assert.Equal(t, "[85, 40, 10]", CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceWithLanguageIdentifier(t *testing.T) {
	input := "```javascript\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_LeadingWhitespace(t *testing.T) {
	input := "   \n```json\n{}\n```  "
	assert.Equal(t, "{}", CleanJSONBlock(input))
}

func TestCleanJSONBlock_EmptyString(t *testing.T) {
	assert.Equal(t, "", CleanJSONBlock(""))
}
