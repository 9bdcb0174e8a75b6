package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityCommand(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := executeCommand(t, "similarity", "python developer", "senior python developer")
	require.NoError(t, err)
	assert.Equal(t, "0.6667\n", stdout)
}

func TestSimilarityCommand_NeedsTwoArgs(t *testing.T) {
	isolateEnv(t)

	_, _, err := executeCommand(t, "similarity", "only one")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "assistant dev\n", stdout)
}

func TestRootCommand_MissingConfigFile(t *testing.T) {
	isolateEnv(t)

	_, _, err := executeCommand(t, "similarity", "--config", "/nonexistent/assistant.yaml", "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"analyze", "rank", "select", "similarity", "version"} {
		assert.Contains(t, names, want)
	}
}
