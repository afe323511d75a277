package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioFixturesAgainstGolden runs every checked-in scenario and
// compares its trace with the golden files.
func TestScenarioFixturesAgainstGolden(t *testing.T) {
	scenarios, err := LoadScenarioDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)

	runner := NewRunner(nil)
	for _, scenario := range scenarios {
		t.Run(scenario.Name, func(t *testing.T) {
			require.NotEmpty(t, scenario.RunToken,
				"golden scenarios must pin run_token")
			result, err := RunWithGolden(t, runner, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

// TestUUIDv7TokenFormat tests the production token generator.
func TestUUIDv7TokenFormat(t *testing.T) {
	tok := UUIDv7Generator{}.Generate()
	assert.Len(t, tok, 36)
	assert.NotEqual(t, tok, UUIDv7Generator{}.Generate())
}

// TestFixedGeneratorSequence tests the deterministic test generator.
func TestFixedGeneratorSequence(t *testing.T) {
	g := NewFixedGenerator("a", "b")
	assert.Equal(t, "a", g.Generate())
	assert.Equal(t, "b", g.Generate())
	assert.Equal(t, "fixed-token", g.Generate())
}
