package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommandsRegistered(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "analyze-gap")
	assert.Contains(t, names, "extract-skills")
	assert.Contains(t, names, "recommend")
}

func TestResolveAPIKey_PrefersFlag(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	assert.Equal(t, "flag-key", resolveAPIKey("flag-key"))
	assert.Equal(t, "env-key", resolveAPIKey(""))
	assert.Equal(t, "env-key", resolveAPIKey("   "))
}

func TestWriteJSONOutput_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	err := writeJSONOutput(map[string]int{"count": 3}, path, "Wrote output")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 3, decoded["count"])
}

func TestWriteJSONOutput_StdoutWhenNoPath(t *testing.T) {
	err := writeJSONOutput([]string{"a"}, "", "ignored")
	require.NoError(t, err)
}
