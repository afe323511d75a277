package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `
name: roundtrip-smoke
description: encode and decode a short string
steps:
  - op: encode
    text: Hi
  - op: decode
    expect:
      text: Hi
assertions:
  - type: cell_count
    count: 16
`

const failingScenario = `
name: expected-mismatch
description: decode yields the original text, not this expectation
steps:
  - op: encode
    text: Hi
  - op: decode
    expect:
      text: Bye
`

func writeScenarioFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestTestCommandPass tests a passing scenario run.
func TestTestCommandPass(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "01-roundtrip.yaml", passingScenario)

	out, err := execute(t, "test", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS roundtrip-smoke")
	assert.Contains(t, out, "1/1 scenarios passed")
}

// TestTestCommandFailure tests that a failing scenario sets exit code 1
// and reports the expectation error.
func TestTestCommandFailure(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "01-roundtrip.yaml", passingScenario)
	writeScenarioFile(t, dir, "02-mismatch.yaml", failingScenario)

	out, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL expected-mismatch")
	assert.Contains(t, out, "1/2 scenarios passed")
}

// TestTestCommandSingleFile tests running one scenario file directly.
func TestTestCommandSingleFile(t *testing.T) {
	path := writeScenarioFile(t, t.TempDir(), "s.yaml", passingScenario)
	out, err := execute(t, "test", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS roundtrip-smoke")
}

// TestTestCommandFilter tests the name glob filter.
func TestTestCommandFilter(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "01-roundtrip.yaml", passingScenario)
	writeScenarioFile(t, dir, "02-mismatch.yaml", failingScenario)

	out, err := execute(t, "test", dir, "--filter", "roundtrip-*")
	require.NoError(t, err)
	assert.Contains(t, out, "1/1 scenarios passed")

	_, err = execute(t, "test", dir, "--filter", "nothing-*")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// TestTestCommandJSON tests the JSON summary.
func TestTestCommandJSON(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "01-roundtrip.yaml", passingScenario)

	out, err := execute(t, "test", dir, "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}

// TestTestCommandBadPath tests the missing-path error.
func TestTestCommandBadPath(t *testing.T) {
	_, err := execute(t, "test", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
