package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePosting = `Senior Python Developer
We are hiring at Acme Corp.

- Build APIs with Python and React
- Mentor junior engineers
Requirements: 5+ years of experience with machine learning.
`

const sampleProfile = `{
  "name": "Ada",
  "projects": [
    {"title": "React Dashboard", "description": "Built a dashboard using React and Python"}
  ],
  "experiences": [
    {"position": "Barista", "description": "Made coffee"}
  ]
}`

// executeCommand runs the root command in-process and captures its output
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeTestFile writes content to name inside a fresh temp dir
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// isolateEnv clears the environment variables the config layer reads
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ANNOTATOR", "GEMINI_API_KEY", "MODEL_NAME", "SELECTION_THRESHOLD", "MAX_PROJECTS", "MAX_EXPERIENCES"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
