package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadScenarioValid tests parsing a well-formed scenario.
func TestLoadScenarioValid(t *testing.T) {
	path := writeScenario(t, `
name: sample
description: a sample scenario
steps:
  - op: encode
    text: Hi
  - op: decode
    expect:
      text: Hi
assertions:
  - type: cell_count
    count: 16
`)
	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", s.Name)
	require.Len(t, s.Steps, 2)
	require.NotNil(t, s.Steps[1].Expect)
	assert.Equal(t, "Hi", s.Steps[1].Expect.Text)
	require.Len(t, s.Assertions, 1)
	assert.Equal(t, AssertCellCount, s.Assertions[0].Type)
}

// TestLoadScenarioRejectsUnknownFields tests strict YAML decoding.
func TestLoadScenarioRejectsUnknownFields(t *testing.T) {
	path := writeScenario(t, `
name: sample
description: a sample scenario
steps:
  - op: encode
    text: Hi
assertion:
  - type: cell_count
`)
	_, err := LoadScenario(path)
	require.Error(t, err, "typo'd top-level key must be rejected")
}

// TestLoadScenarioRequiredFields tests field validation.
func TestLoadScenarioRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing name", "description: d\nsteps: [{op: encode, text: A}]"},
		{"missing description", "name: n\nsteps: [{op: encode, text: A}]"},
		{"no steps", "name: n\ndescription: d"},
		{"unknown op", "name: n\ndescription: d\nsteps: [{op: frobnicate}]"},
		{"encode without text", "name: n\ndescription: d\nsteps: [{op: encode}]"},
		{"tamper without cell", "name: n\ndescription: d\nsteps: [{op: tamper, row: 0}]"},
		{"identity without size", "name: n\ndescription: d\nsteps: [{op: identity, name: A}]"},
		{"unknown assertion", "name: n\ndescription: d\nsteps: [{op: encode, text: A}]\nassertions: [{type: nope}]"},
		{"bit_pattern without pattern", "name: n\ndescription: d\nsteps: [{op: encode, text: A}]\nassertions: [{type: bit_pattern}]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tc.content))
			require.Error(t, err)
		})
	}
}

// TestLoadScenarioDir tests directory loading order and the empty edge.
func TestLoadScenarioDir(t *testing.T) {
	scenarios, err := LoadScenarioDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.Len(t, scenarios, 3)
	// Sorted by file name.
	assert.Equal(t, "identity-repeatable", scenarios[0].Name)
	assert.Equal(t, "roundtrip-fc", scenarios[1].Name)
	assert.Equal(t, "tamper-detect", scenarios[2].Name)

	_, err = LoadScenarioDir(t.TempDir())
	require.Error(t, err)
}
