package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvalText tests text output of the eval command.
func TestEvalText(t *testing.T) {
	out, err := execute(t, "eval", "2^10")
	require.NoError(t, err)
	assert.Equal(t, "1024\n", out)
}

// TestEvalJSON tests the JSON response envelope.
func TestEvalJSON(t *testing.T) {
	out, err := execute(t, "eval", "2 + 3", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "2+3", data["expression"])
	assert.Equal(t, 5.0, data["value"])
}

// TestEvalFailure tests the error path and exit code.
func TestEvalFailure(t *testing.T) {
	out, err := execute(t, "eval", "nope(3)")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "INVALID_EXPRESSION")
}

// TestVerifyPassAndFail tests verification outcomes and exit codes.
func TestVerifyPassAndFail(t *testing.T) {
	out, err := execute(t, "verify", "√2", "1.41421356")
	require.NoError(t, err)
	assert.Equal(t, "verified\n", out)

	out, err = execute(t, "verify", "√2", "1.5")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "not verified\n", out)

	_, err = execute(t, "verify", "√2", "abc")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// TestVerifyToleranceFlag tests that tolerance is caller-configurable.
func TestVerifyToleranceFlag(t *testing.T) {
	_, err := execute(t, "verify", "1.0001", "1", "--tolerance", "1e-6")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, err = execute(t, "verify", "1.0001", "1", "--tolerance", "1e-2")
	require.NoError(t, err)
}

// TestGenerateCommand tests generation output.
func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, "generate", "7", "--min-count", "6")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 6)

	_, err = execute(t, "generate", "x")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// TestIdentityCommand tests identity derivation and determinism across
// invocations.
func TestIdentityCommand(t *testing.T) {
	first, err := execute(t, "identity", "Alice", "8")
	require.NoError(t, err)
	second, err := execute(t, "identity", "Alice", "8")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, strings.Split(strings.TrimSpace(first), "\n"), 8)

	_, err = execute(t, "identity", "Alice", "zero")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
